package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"OncoCare/models"
)

func TestAppointmentUpdateColumns(t *testing.T) {
	appointment := &models.Appointment{
		OwnerID:           "user-1",
		ID:                "appt-1",
		Title:             "Oncology follow-up",
		Category:          "medical",
		Status:            "confirmed",
		Date:              "2025-11-15",
		Time:              "14:30",
		DurationMinutes:   30,
		RemindersEnabled:  true,
		ReminderLeadTimes: []int{60, 1440},
	}

	columns := appointmentUpdateColumns(appointment)

	// The reminder policy is mutable and must survive a detail update.
	assert.Equal(t, []int{60, 1440}, columns["reminder_lead_times"])
	assert.Equal(t, true, columns["reminders_enabled"])

	// Status has its own guarded write path and never rides along.
	assert.NotContains(t, columns, "status")
	assert.NotContains(t, columns, "id")
	assert.NotContains(t, columns, "owner_id")
}
