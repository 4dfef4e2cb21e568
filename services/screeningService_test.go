package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"OncoCare/models"
	"OncoCare/scheduling"
)

func TestClassifyScreenings(t *testing.T) {
	now := time.Date(2025, time.June, 15, 9, 0, 0, 0, time.UTC)
	items := []models.Screening{
		{ID: "s-1", OwnerID: "user-1", Type: "mammography", NextDue: time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "s-2", OwnerID: "user-1", Type: "skin_check", NextDue: time.Date(2025, time.June, 15, 23, 0, 0, 0, time.UTC)},
		{ID: "s-3", OwnerID: "user-1", Type: "blood_test", NextDue: time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)},
	}

	due := classifyScreenings(items, now)
	require.Len(t, due, 3)

	// Every screening is returned with its state; nothing is filtered out.
	assert.Equal(t, scheduling.Overdue, due[0].State)
	assert.Equal(t, scheduling.DueToday, due[1].State)
	assert.Equal(t, scheduling.Upcoming, due[2].State)
	assert.Equal(t, "s-1", due[0].Screening.ID)
}

func TestClassifyScreeningsEmpty(t *testing.T) {
	due := classifyScreenings(nil, time.Now())
	assert.Empty(t, due)
}
