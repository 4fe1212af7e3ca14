package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Medication is a single prescribed medication line item
type Medication struct {
	Name      string `json:"name"`
	Dosage    string `json:"dosage"`
	Frequency string `json:"frequency"`
	Duration  string `json:"duration"`
}

// MedicationList stores prescription line items as a JSONB array
type MedicationList []Medication

// Value implements driver.Valuer
func (m MedicationList) Value() (driver.Value, error) {
	if len(m) == 0 {
		return nil, nil
	}
	return json.Marshal(m)
}

// Scan implements sql.Scanner
func (m *MedicationList) Scan(value interface{}) error {
	if value == nil {
		*m = nil
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New(fmt.Sprint("Failed to unmarshal JSONB value:", value))
	}

	result := []Medication{}
	err := json.Unmarshal(bytes, &result)
	*m = MedicationList(result)
	return err
}

// Prescription represents medications prescribed to a pet by a doctor
type Prescription struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Medications  MedicationList `gorm:"type:jsonb;not null" json:"medications"`
	DoctorID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"doctor_id"`
	PetID        uuid.UUID      `gorm:"type:uuid;not null;index" json:"pet_id"`
	Date         time.Time      `gorm:"not null" json:"date"`
	Instructions string         `gorm:"type:text" json:"instructions,omitempty"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctor User `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Pet    Pet  `gorm:"foreignKey:PetID" json:"pet,omitempty"`
}

func (Prescription) TableName() string {
	return "prescriptions"
}
