package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    AppointmentStatus
		to      AppointmentStatus
		allowed bool
	}{
		{"pending to confirmed", AppointmentStatusPending, AppointmentStatusConfirmed, true},
		{"pending to completed", AppointmentStatusPending, AppointmentStatusCompleted, true},
		{"pending to cancelled", AppointmentStatusPending, AppointmentStatusCancelled, true},
		{"confirmed to completed", AppointmentStatusConfirmed, AppointmentStatusCompleted, true},
		{"confirmed to cancelled", AppointmentStatusConfirmed, AppointmentStatusCancelled, true},
		{"confirmed to confirmed", AppointmentStatusConfirmed, AppointmentStatusConfirmed, false},
		{"confirmed to pending", AppointmentStatusConfirmed, AppointmentStatusPending, false},
		{"completed to confirmed", AppointmentStatusCompleted, AppointmentStatusConfirmed, false},
		{"completed to cancelled", AppointmentStatusCompleted, AppointmentStatusCancelled, false},
		{"cancelled to confirmed", AppointmentStatusCancelled, AppointmentStatusConfirmed, false},
		{"cancelled to completed", AppointmentStatusCancelled, AppointmentStatusCompleted, false},
		{"pending to pending", AppointmentStatusPending, AppointmentStatusPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, AppointmentStatusPending.IsTerminal())
	assert.False(t, AppointmentStatusConfirmed.IsTerminal())
	assert.True(t, AppointmentStatusCompleted.IsTerminal())
	assert.True(t, AppointmentStatusCancelled.IsTerminal())
}

func TestTerminalStatesHaveNoOutgoingTransitions(t *testing.T) {
	all := []AppointmentStatus{
		AppointmentStatusPending,
		AppointmentStatusConfirmed,
		AppointmentStatusCompleted,
		AppointmentStatusCancelled,
	}

	for _, from := range all {
		if !from.IsTerminal() {
			continue
		}
		for _, to := range all {
			assert.False(t, from.CanTransitionTo(to),
				"terminal status %s must not transition to %s", from, to)
		}
	}
}

func TestValidAppointmentStatus(t *testing.T) {
	assert.True(t, ValidAppointmentStatus(AppointmentStatusPending))
	assert.True(t, ValidAppointmentStatus(AppointmentStatusConfirmed))
	assert.True(t, ValidAppointmentStatus(AppointmentStatusCompleted))
	assert.True(t, ValidAppointmentStatus(AppointmentStatusCancelled))
	assert.False(t, ValidAppointmentStatus("missed"))
	assert.False(t, ValidAppointmentStatus(""))
}

func TestAppointmentOwnership(t *testing.T) {
	doctorID := uuid.New()
	ownerID := uuid.New()

	appointment := &Appointment{
		DoctorID:    doctorID,
		CreatedByID: ownerID,
	}

	assert.True(t, appointment.IsAssignedDoctor(doctorID))
	assert.False(t, appointment.IsAssignedDoctor(ownerID))
	assert.True(t, appointment.IsCreator(ownerID))
	assert.False(t, appointment.IsCreator(doctorID))
}
