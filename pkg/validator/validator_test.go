package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type bookingInput struct {
	Email  string `validate:"required,email"`
	Reason string `validate:"required,min=10,max=500"`
	Age    int    `validate:"omitempty,gte=0"`
}

func TestValidate_Passes(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(&bookingInput{
		Email:  "owner@example.com",
		Reason: "annual checkup and vaccines",
	})

	assert.NoError(t, err)
}

func TestValidate_Fails(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(&bookingInput{Email: "not-an-email", Reason: "short"})

	assert.Error(t, err)
}

func TestFormatValidationErrors(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(&bookingInput{Email: "not-an-email", Reason: "short"})
	assert.Error(t, err)

	fields := cv.FormatValidationErrors(err)

	assert.Equal(t, "Email must be a valid email address", fields["Email"])
	assert.Equal(t, "Reason must be at least 10 characters", fields["Reason"])
}

func TestFormatValidationErrors_RequiredAndMax(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(&bookingInput{Reason: string(make([]byte, 501))})
	assert.Error(t, err)

	fields := cv.FormatValidationErrors(err)

	assert.Equal(t, "Email is required", fields["Email"])
	assert.Equal(t, "Reason must be at most 500 characters", fields["Reason"])
}

func TestFormatValidationErrors_NonValidationError(t *testing.T) {
	cv := NewValidator()

	assert.Empty(t, cv.FormatValidationErrors(assert.AnError))
}
