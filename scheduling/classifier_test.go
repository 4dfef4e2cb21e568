package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"OncoCare/models"
)

func TestClassify_Boundaries(t *testing.T) {
	now := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		nextDue  time.Time
		expected DueState
	}{
		{"due yesterday is overdue", date(2025, time.June, 14), Overdue},
		{"due today is due today", date(2025, time.June, 15), DueToday},
		{"due tomorrow is upcoming", date(2025, time.June, 16), Upcoming},
		{"long past is overdue", date(2023, time.January, 1), Overdue},
		{"far future is upcoming", date(2027, time.January, 1), Upcoming},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(now, tt.nextDue))
		})
	}
}

func TestClassify_IgnoresTimeOfDay(t *testing.T) {
	// 23:59 on the due date is still due today, not overdue.
	now := time.Date(2025, time.June, 15, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, DueToday, Classify(now, date(2025, time.June, 15)))
}

func TestReminderTimes(t *testing.T) {
	appointment := models.Appointment{
		Date:              "2025-11-15",
		Time:              "14:30",
		RemindersEnabled:  true,
		ReminderLeadTimes: []int{60, 1440},
	}

	times, err := ReminderTimes(&appointment)
	require.NoError(t, err)
	require.Len(t, times, 2)
	assert.Equal(t, time.Date(2025, time.November, 14, 14, 30, 0, 0, time.UTC), times[0])
	assert.Equal(t, time.Date(2025, time.November, 15, 13, 30, 0, 0, time.UTC), times[1])
}

func TestReminderTimes_KeepsDuplicates(t *testing.T) {
	appointment := models.Appointment{
		Date:              "2025-11-15",
		Time:              "14:30",
		RemindersEnabled:  true,
		ReminderLeadTimes: []int{30, 30, 10},
	}

	times, err := ReminderTimes(&appointment)
	require.NoError(t, err)
	require.Len(t, times, 3)
	assert.Equal(t, times[0], times[1], "duplicate lead times fire twice")
	assert.True(t, times[1].Before(times[2]))
}

func TestReminderTimes_Disabled(t *testing.T) {
	appointment := models.Appointment{
		Date:              "2025-11-15",
		Time:              "14:30",
		RemindersEnabled:  false,
		ReminderLeadTimes: []int{60},
	}

	times, err := ReminderTimes(&appointment)
	require.NoError(t, err)
	assert.Empty(t, times)
}

func TestReminderTimes_MalformedInstant(t *testing.T) {
	appointment := models.Appointment{
		Date:              "2025-11-15",
		Time:              "25:99",
		RemindersEnabled:  true,
		ReminderLeadTimes: []int{60},
	}

	_, err := ReminderTimes(&appointment)
	assert.Error(t, err)
}
