package entity

import (
	"time"

	"github.com/google/uuid"
)

// Hospital represents a veterinary hospital doctors are affiliated with
type Hospital struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name          string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`
	Address       JSON       `gorm:"type:jsonb" json:"address,omitempty"`
	ContactNumber string     `gorm:"type:varchar(20);not null" json:"contact_number"`
	Email         string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Services      StringList `gorm:"type:jsonb" json:"services,omitempty"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctors []DoctorProfile `gorm:"foreignKey:HospitalID" json:"doctors,omitempty"`
}

func (Hospital) TableName() string {
	return "hospitals"
}
