package scheduling

import (
	"fmt"
	"time"

	"OncoCare/models"
)

// Frequency values accepted for a screening cadence.
const (
	FrequencyMonthly     = "monthly"
	FrequencyYearly      = "yearly"
	FrequencyEvery2Years = "every_2_years"
	FrequencyEvery3Years = "every_3_years"
	FrequencyEvery5Years = "every_5_years"
)

var frequencyMonths = map[string]int{
	FrequencyMonthly:     1,
	FrequencyYearly:      12,
	FrequencyEvery2Years: 24,
	FrequencyEvery3Years: 36,
	FrequencyEvery5Years: 60,
}

// FrequencyMonths maps a frequency name to its month count.
func FrequencyMonths(frequency string) (int, bool) {
	months, ok := frequencyMonths[frequency]
	return months, ok
}

// NextDue computes when a screening next falls due. The base is the last
// completion when one exists, otherwise the supplied current time; the clock
// is always a parameter so the result is deterministic.
func NextDue(lastCompleted *time.Time, months int, now time.Time) time.Time {
	base := now
	if lastCompleted != nil {
		base = *lastCompleted
	}
	return addMonthsClamped(base, months)
}

// addMonthsClamped advances t by the given number of calendar months, keeping
// the day of month and clamping to the last day when the target month is
// shorter (Jan 31 + 1 month -> Feb 28/29).
func addMonthsClamped(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	first := time.Date(year, month+time.Month(months), 1, 0, 0, 0, 0, t.Location())
	if last := daysInMonth(first.Year(), first.Month()); day > last {
		day = last
	}
	hour, min, sec := t.Clock()
	return time.Date(first.Year(), first.Month(), day, hour, min, sec, t.Nanosecond(), t.Location())
}

// daysInMonth returns the number of days in the given month. Day zero of the
// following month normalizes to the last day of this one.
func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// RecordCompletion marks a screening completed at the given date, recomputes
// its next-due date, and clears the reminder flag. The completion date must
// not be later than the evaluation time.
func RecordCompletion(screening *models.Screening, completedAt, now time.Time) error {
	if completedAt.After(now) {
		return ErrInvalidCompletionDate
	}
	months, ok := FrequencyMonths(screening.Frequency)
	if !ok {
		return fmt.Errorf("unknown screening frequency %q", screening.Frequency)
	}

	completed := completedAt
	screening.LastCompleted = &completed
	screening.NextDue = NextDue(screening.LastCompleted, months, now)
	screening.ReminderSent = false
	return nil
}
