package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PetType represents the species of a pet
type PetType string

const (
	PetTypeDog   PetType = "dog"
	PetTypeCat   PetType = "cat"
	PetTypeBird  PetType = "bird"
	PetTypeOther PetType = "other"
)

// Pet represents an animal registered by a pet owner
type Pet struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name      string          `gorm:"type:varchar(255);not null" json:"name"`
	Type      PetType         `gorm:"type:varchar(20);not null" json:"type"`
	Breed     string          `gorm:"type:varchar(255);not null" json:"breed"`
	Age       int             `gorm:"not null" json:"age"`
	Weight    decimal.Decimal `gorm:"type:decimal(6,2);not null" json:"weight"`
	OwnerID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"owner_id"`
	CreatedAt time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Owner          User            `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Vaccinations   []Vaccination   `gorm:"foreignKey:PetID" json:"vaccinations,omitempty"`
	MedicalRecords []MedicalRecord `gorm:"foreignKey:PetID" json:"medical_records,omitempty"`
}

func (Pet) TableName() string {
	return "pets"
}
