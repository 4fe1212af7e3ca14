package entity

import (
	"time"

	"github.com/google/uuid"
)

// Vaccination records a vaccine administered to a pet and when the next
// dose falls due.
type Vaccination struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name             string    `gorm:"type:varchar(255);not null" json:"name"`
	Date             time.Time `gorm:"not null" json:"date"`
	NextDueDate      time.Time `gorm:"not null;index" json:"next_due_date"`
	AdministeredByID uuid.UUID `gorm:"type:uuid;not null;index" json:"administered_by_id"`
	PetID            uuid.UUID `gorm:"type:uuid;not null;index" json:"pet_id"`
	Notes            string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	AdministeredBy User `gorm:"foreignKey:AdministeredByID" json:"administered_by,omitempty"`
	Pet            Pet  `gorm:"foreignKey:PetID" json:"pet,omitempty"`
}

func (Vaccination) TableName() string {
	return "vaccinations"
}
