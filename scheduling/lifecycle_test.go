package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"OncoCare/models"
)

var allStatuses = []string{
	StatusScheduled,
	StatusConfirmed,
	StatusCompleted,
	StatusCancelled,
	StatusRescheduled,
}

func TestTransition_TableCompleteness(t *testing.T) {
	allowed := map[[2]string]bool{
		{StatusScheduled, StatusConfirmed}:   true,
		{StatusScheduled, StatusCancelled}:   true,
		{StatusScheduled, StatusRescheduled}: true,
		{StatusConfirmed, StatusCompleted}:   true,
		{StatusConfirmed, StatusCancelled}:   true,
		{StatusRescheduled, StatusScheduled}: true,
	}

	for _, from := range allStatuses {
		for _, to := range allStatuses {
			appointment := models.Appointment{Status: from}
			err := Transition(&appointment, to)

			if allowed[[2]string{from, to}] {
				require.NoError(t, err, "%s -> %s should be allowed", from, to)
				assert.Equal(t, to, appointment.Status)
				continue
			}

			require.Error(t, err, "%s -> %s should be rejected", from, to)
			var transitionErr *InvalidTransitionError
			require.ErrorAs(t, err, &transitionErr)
			assert.Equal(t, from, transitionErr.From)
			assert.Equal(t, to, transitionErr.To)
			assert.Equal(t, from, appointment.Status, "a rejected transition must not mutate status")
		}
	}
}

func TestTransition_TerminalStatesLock(t *testing.T) {
	for _, terminal := range []string{StatusCompleted, StatusCancelled} {
		assert.True(t, IsTerminal(terminal), terminal)
		for _, to := range allStatuses {
			appointment := models.Appointment{Status: terminal}
			err := Transition(&appointment, to)
			assert.Error(t, err, "%s -> %s must stay locked", terminal, to)
		}
	}
}

func TestTransition_RescheduledReturnsToScheduled(t *testing.T) {
	appointment := models.Appointment{Status: StatusScheduled}

	require.NoError(t, Transition(&appointment, StatusRescheduled))
	require.NoError(t, Transition(&appointment, StatusScheduled))
	require.NoError(t, Transition(&appointment, StatusConfirmed))
	require.NoError(t, Transition(&appointment, StatusCompleted))
	assert.Equal(t, StatusCompleted, appointment.Status)
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(StatusScheduled))
	assert.False(t, IsTerminal(StatusConfirmed))
	assert.False(t, IsTerminal(StatusRescheduled))
	assert.True(t, IsTerminal(StatusCompleted))
	assert.True(t, IsTerminal(StatusCancelled))
}
