package entity

import (
	"time"

	"github.com/google/uuid"
)

// DoctorProfile holds doctor-specific data linked to a User account
type DoctorProfile struct {
	UserID         uuid.UUID  `gorm:"type:uuid;primaryKey" json:"user_id"`
	Name           string     `gorm:"type:varchar(255);not null" json:"name"`
	Specialization string     `gorm:"type:varchar(255);not null" json:"specialization"`
	HospitalID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"hospital_id"`
	ContactNumber  string     `gorm:"type:varchar(20);not null" json:"contact_number"`
	Availability   JSON       `gorm:"type:jsonb" json:"availability,omitempty"`
	CreatedAt      time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User     User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Hospital Hospital `gorm:"foreignKey:HospitalID" json:"hospital,omitempty"`
}

func (DoctorProfile) TableName() string {
	return "doctor_profiles"
}
