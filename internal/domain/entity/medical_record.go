package entity

import (
	"time"

	"github.com/google/uuid"
)

// MedicalRecord stores a diagnosis made by a doctor for a pet, normally
// tied to the appointment during which the pet was examined.
type MedicalRecord struct {
	ID                    uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Date                  time.Time  `gorm:"not null;index:,sort:desc" json:"date"`
	Symptoms              StringList `gorm:"type:jsonb;not null" json:"symptoms"`
	Diagnosis             string     `gorm:"type:text;not null" json:"diagnosis"`
	Treatment             StringList `gorm:"type:jsonb;not null" json:"treatment"`
	PrescribedMedications StringList `gorm:"type:jsonb" json:"prescribed_medications,omitempty"`
	DoctorID              uuid.UUID  `gorm:"type:uuid;not null;index" json:"doctor_id"`
	PetID                 uuid.UUID  `gorm:"type:uuid;not null;index" json:"pet_id"`
	AppointmentID         uuid.UUID  `gorm:"type:uuid;not null;index" json:"appointment_id"`
	Notes                 string     `gorm:"type:text" json:"notes,omitempty"`
	FollowUpDate          *time.Time `json:"follow_up_date,omitempty"`
	CreatedAt             time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt             time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctor      User        `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Pet         Pet         `gorm:"foreignKey:PetID" json:"pet,omitempty"`
	Appointment Appointment `gorm:"foreignKey:AppointmentID" json:"appointment,omitempty"`
}

func (MedicalRecord) TableName() string {
	return "medical_records"
}
