package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"OncoCare/models"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestNextDue_MonthClamping(t *testing.T) {
	tests := []struct {
		name          string
		lastCompleted time.Time
		months        int
		expected      time.Time
	}{
		{
			name:          "Jan 31 plus one month clamps to Feb 28 in a non-leap year",
			lastCompleted: date(2025, time.January, 31),
			months:        1,
			expected:      date(2025, time.February, 28),
		},
		{
			name:          "Jan 31 plus one month clamps to Feb 29 in a leap year",
			lastCompleted: date(2024, time.January, 31),
			months:        1,
			expected:      date(2024, time.February, 29),
		},
		{
			name:          "May 31 plus one month clamps to Jun 30",
			lastCompleted: date(2025, time.May, 31),
			months:        1,
			expected:      date(2025, time.June, 30),
		},
		{
			name:          "mid-month day carries over unchanged",
			lastCompleted: date(2025, time.March, 15),
			months:        12,
			expected:      date(2026, time.March, 15),
		},
		{
			name:          "month arithmetic crosses year boundaries",
			lastCompleted: date(2025, time.November, 30),
			months:        3,
			expected:      date(2026, time.February, 28),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextDue(&tt.lastCompleted, tt.months, date(2030, time.January, 1))
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestNextDue_AnchorsToNowWithoutCompletion(t *testing.T) {
	now := date(2025, time.January, 1)
	got := NextDue(nil, 24, now)
	assert.Equal(t, date(2027, time.January, 1), got)
}

func TestNextDue_RepeatedAdvanceIsStable(t *testing.T) {
	// Re-anchoring on each computed due date advances exactly one interval
	// per step, modulo day-of-month clamping.
	current := date(2025, time.June, 15)
	for i := 0; i < 10; i++ {
		current = NextDue(&current, 12, date(2030, time.January, 1))
	}
	assert.Equal(t, date(2035, time.June, 15), current)
}

func TestFrequencyMonths(t *testing.T) {
	tests := []struct {
		frequency string
		months    int
		known     bool
	}{
		{FrequencyMonthly, 1, true},
		{FrequencyYearly, 12, true},
		{FrequencyEvery2Years, 24, true},
		{FrequencyEvery3Years, 36, true},
		{FrequencyEvery5Years, 60, true},
		{"weekly", 0, false},
	}

	for _, tt := range tests {
		months, ok := FrequencyMonths(tt.frequency)
		assert.Equal(t, tt.known, ok, tt.frequency)
		assert.Equal(t, tt.months, months, tt.frequency)
	}
}

func TestRecordCompletion(t *testing.T) {
	now := date(2025, time.July, 1)
	screening := models.Screening{
		ID:           "scr-1",
		OwnerID:      "user-1",
		Type:         "mammography",
		Frequency:    FrequencyEvery2Years,
		NextDue:      date(2027, time.January, 1),
		ReminderSent: true,
	}

	err := RecordCompletion(&screening, date(2025, time.June, 1), now)
	require.NoError(t, err)

	require.NotNil(t, screening.LastCompleted)
	assert.Equal(t, date(2025, time.June, 1), *screening.LastCompleted)
	assert.Equal(t, date(2027, time.June, 1), screening.NextDue)
	assert.False(t, screening.ReminderSent, "reminder flag should reset on completion")
}

func TestRecordCompletion_RejectsFutureDate(t *testing.T) {
	now := date(2025, time.June, 1)
	screening := models.Screening{Frequency: FrequencyYearly}

	err := RecordCompletion(&screening, date(2025, time.June, 2), now)
	assert.ErrorIs(t, err, ErrInvalidCompletionDate)
	assert.Nil(t, screening.LastCompleted, "a rejected completion must not mutate the screening")
}

func TestRecordCompletion_UnknownFrequency(t *testing.T) {
	now := date(2025, time.June, 1)
	screening := models.Screening{Frequency: "fortnightly"}

	err := RecordCompletion(&screening, now, now)
	assert.Error(t, err)
}
