package scheduling

import (
	"OncoCare/models"
)

// Appointment status values.
const (
	StatusScheduled   = "scheduled"
	StatusConfirmed   = "confirmed"
	StatusCompleted   = "completed"
	StatusCancelled   = "cancelled"
	StatusRescheduled = "rescheduled"
)

// Appointment categories.
const (
	CategoryMedical   = "medical"
	CategoryTreatment = "treatment"
	CategorySupport   = "support"
	CategoryScreening = "screening"
)

// allowedTransitions is the complete status transition table. completed and
// cancelled are terminal.
var allowedTransitions = map[string][]string{
	StatusScheduled:   {StatusConfirmed, StatusCancelled, StatusRescheduled},
	StatusConfirmed:   {StatusCompleted, StatusCancelled},
	StatusRescheduled: {StatusScheduled},
}

// CanTransition reports whether the status change appears in the table.
func CanTransition(from, to string) bool {
	for _, allowed := range allowedTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transition is permitted from status.
func IsTerminal(status string) bool {
	return len(allowedTransitions[status]) == 0
}

// Transition applies a status change to an appointment. It is the only
// sanctioned way to mutate Status; callers must not overwrite the field
// directly.
func Transition(appointment *models.Appointment, to string) error {
	if !CanTransition(appointment.Status, to) {
		return &InvalidTransitionError{From: appointment.Status, To: to}
	}
	appointment.Status = to
	return nil
}
