package scheduling

import (
	"sort"
	"time"

	"OncoCare/models"
)

// DueState classifies a screening relative to the current date.
type DueState string

const (
	Upcoming DueState = "upcoming"
	DueToday DueState = "due_today"
	Overdue  DueState = "overdue"
)

// Classify compares the next-due date with the current time by calendar date.
// A screening is overdue once its due date is strictly before today.
func Classify(now, nextDue time.Time) DueState {
	nowYear, nowMonth, nowDay := now.Date()
	dueYear, dueMonth, dueDay := nextDue.Date()

	today := time.Date(nowYear, nowMonth, nowDay, 0, 0, 0, 0, time.UTC)
	due := time.Date(dueYear, dueMonth, dueDay, 0, 0, 0, 0, time.UTC)

	switch {
	case due.Before(today):
		return Overdue
	case due.Equal(today):
		return DueToday
	default:
		return Upcoming
	}
}

// ReminderTimes computes the instants at which reminders for an appointment
// should fire, one per configured lead time, sorted ascending. Duplicate lead
// times are kept; their relative order is preserved. Disabled reminders yield
// an empty sequence.
func ReminderTimes(appointment *models.Appointment) ([]time.Time, error) {
	if !appointment.RemindersEnabled || len(appointment.ReminderLeadTimes) == 0 {
		return nil, nil
	}

	startsAt, err := appointment.StartsAt()
	if err != nil {
		return nil, err
	}

	times := make([]time.Time, 0, len(appointment.ReminderLeadTimes))
	for _, lead := range appointment.ReminderLeadTimes {
		times = append(times, startsAt.Add(-time.Duration(lead)*time.Minute))
	}
	sort.SliceStable(times, func(i, j int) bool {
		return times[i].Before(times[j])
	})
	return times, nil
}
