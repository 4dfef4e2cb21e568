package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"OncoCare/models"
)

func TestStore_AppointmentLifecycle(t *testing.T) {
	store := NewStore()

	appointment := models.Appointment{
		OwnerID:  "user-1",
		Title:    "Oncology consult",
		Category: CategoryMedical,
		Date:     "2025-10-01",
		Time:     "10:00",
	}
	require.NoError(t, store.CreateAppointment(&appointment))
	assert.NotEmpty(t, appointment.ID)
	assert.Equal(t, StatusScheduled, appointment.Status)

	fetched, err := store.GetAppointment("user-1", appointment.ID)
	require.NoError(t, err)
	assert.Equal(t, "Oncology consult", fetched.Title)

	// Another owner cannot see or transition the record.
	_, err = store.GetAppointment("user-2", appointment.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = store.TransitionAppointment("user-2", appointment.ID, StatusConfirmed)
	assert.ErrorIs(t, err, ErrNotFound)

	confirmed, err := store.TransitionAppointment("user-1", appointment.ID, StatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, confirmed.Status)

	_, err = store.TransitionAppointment("user-1", appointment.ID, StatusRescheduled)
	var transitionErr *InvalidTransitionError
	require.ErrorAs(t, err, &transitionErr)

	require.NoError(t, store.DeleteAppointment("user-1", appointment.ID))
	_, err = store.GetAppointment("user-1", appointment.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_UpdatePreservesStatus(t *testing.T) {
	store := NewStore()

	appointment := models.Appointment{OwnerID: "user-1", Title: "Support group", Date: "2025-10-01", Time: "18:00"}
	require.NoError(t, store.CreateAppointment(&appointment))
	_, err := store.TransitionAppointment("user-1", appointment.ID, StatusConfirmed)
	require.NoError(t, err)

	// A detail update that smuggles in a status value must not bypass the
	// lifecycle controller.
	appointment.Title = "Support group (moved room)"
	appointment.Status = StatusCompleted
	require.NoError(t, store.UpdateAppointment(&appointment))

	fetched, err := store.GetAppointment("user-1", appointment.ID)
	require.NoError(t, err)
	assert.Equal(t, "Support group (moved room)", fetched.Title)
	assert.Equal(t, StatusConfirmed, fetched.Status)
}

func TestStore_UpdateReplacesReminderLeadTimes(t *testing.T) {
	store := NewStore()

	appointment := models.Appointment{
		OwnerID:           "user-1",
		Title:             "Chemo session",
		Date:              "2025-10-01",
		Time:              "09:00",
		RemindersEnabled:  true,
		ReminderLeadTimes: []int{60},
	}
	require.NoError(t, store.CreateAppointment(&appointment))

	appointment.ReminderLeadTimes = []int{30, 10}
	require.NoError(t, store.UpdateAppointment(&appointment))

	fetched, err := store.GetAppointment("user-1", appointment.ID)
	require.NoError(t, err)
	assert.Equal(t, []int{30, 10}, fetched.ReminderLeadTimes)
}

func TestStore_RejectsOwnerlessRecords(t *testing.T) {
	store := NewStore()
	assert.Error(t, store.CreateAppointment(&models.Appointment{Title: "No owner"}))
	assert.Error(t, store.CreateScreening(&models.Screening{Type: "blood_test"}))
}

func TestStore_ScreeningEndToEnd(t *testing.T) {
	store := NewStore()
	now := date(2025, time.January, 1)

	screening := models.Screening{
		OwnerID:   "user-1",
		Type:      "mammography",
		Frequency: FrequencyEvery2Years,
		NextDue:   NextDue(nil, 24, now),
	}
	require.NoError(t, store.CreateScreening(&screening))
	assert.Equal(t, date(2027, time.January, 1), screening.NextDue)
	assert.Equal(t, Upcoming, Classify(now, screening.NextDue))

	completed, err := store.CompleteScreening("user-1", screening.ID, date(2025, time.June, 1), date(2025, time.June, 1))
	require.NoError(t, err)
	assert.Equal(t, date(2027, time.June, 1), completed.NextDue)
	assert.False(t, completed.ReminderSent)

	_, err = store.CompleteScreening("user-1", screening.ID, date(2099, time.January, 1), now)
	assert.ErrorIs(t, err, ErrInvalidCompletionDate)

	require.NoError(t, store.DeleteScreening("user-1", screening.ID))
	_, err = store.GetScreening("user-1", screening.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
