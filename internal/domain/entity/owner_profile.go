package entity

import (
	"time"

	"github.com/google/uuid"
)

// OwnerProfile holds pet-owner-specific data linked to a User account
type OwnerProfile struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	FirstName string    `gorm:"type:varchar(255);not null" json:"first_name"`
	LastName  string    `gorm:"type:varchar(255);not null" json:"last_name"`
	Phone     string    `gorm:"type:varchar(20);not null" json:"phone"`
	Address   JSON      `gorm:"type:jsonb" json:"address,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Pets []Pet `gorm:"foreignKey:OwnerID;references:UserID" json:"pets,omitempty"`
}

func (OwnerProfile) TableName() string {
	return "owner_profiles"
}
