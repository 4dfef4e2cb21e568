package scheduling

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"OncoCare/models"
)

// fixtureAppointments builds n appointments with distinct, ascending
// (date, time) slots spread over consecutive days.
func fixtureAppointments(n int) []models.Appointment {
	appointments := make([]models.Appointment, 0, n)
	for i := 0; i < n; i++ {
		day := time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i)
		appointments = append(appointments, models.Appointment{
			ID:       fmt.Sprintf("apt-%02d", i),
			OwnerID:  "user-1",
			Title:    fmt.Sprintf("Checkup %d", i),
			Category: CategoryMedical,
			Status:   StatusScheduled,
			Date:     day.Format("2006-01-02"),
			Time:     fmt.Sprintf("%02d:00", 8+i%10),
		})
	}
	return appointments
}

func TestListAppointments_PaginationDeterminism(t *testing.T) {
	appointments := fixtureAppointments(25)

	// Shuffle-ish input order: reverse it so sorting is actually exercised.
	reversed := make([]models.Appointment, 0, len(appointments))
	for i := len(appointments) - 1; i >= 0; i-- {
		reversed = append(reversed, appointments[i])
	}

	first, err := ListAppointments(reversed, Filter{}, 1, 10)
	require.NoError(t, err)
	assert.Len(t, first.Items, 10)
	assert.Equal(t, 25, first.Total)
	assert.Equal(t, 3, first.TotalPages)
	assert.Equal(t, "apt-00", first.Items[0].ID)
	assert.Equal(t, "apt-09", first.Items[9].ID)

	last, err := ListAppointments(reversed, Filter{}, 3, 10)
	require.NoError(t, err)
	assert.Len(t, last.Items, 5)
	assert.Equal(t, "apt-20", last.Items[0].ID)
	assert.Equal(t, "apt-24", last.Items[4].ID)
}

func TestListAppointments_PageBeyondEnd(t *testing.T) {
	page, err := ListAppointments(fixtureAppointments(5), Filter{}, 4, 10)
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, 5, page.Total)
	assert.Equal(t, 1, page.TotalPages)
	assert.Equal(t, 4, page.Page)
}

func TestListAppointments_InvalidPagination(t *testing.T) {
	tests := []struct {
		page     int
		pageSize int
	}{
		{0, 10},
		{-1, 10},
		{1, 0},
		{1, -5},
	}
	for _, tt := range tests {
		_, err := ListAppointments(nil, Filter{}, tt.page, tt.pageSize)
		assert.ErrorIs(t, err, ErrInvalidPagination)
	}
}

func TestListAppointments_Filtering(t *testing.T) {
	appointments := []models.Appointment{
		{ID: "a", OwnerID: "user-1", Status: StatusScheduled, Category: CategoryMedical, Date: "2025-09-01", Time: "09:00"},
		{ID: "b", OwnerID: "user-1", Status: StatusConfirmed, Category: CategoryScreening, Date: "2025-09-05", Time: "09:00"},
		{ID: "c", OwnerID: "user-2", Status: StatusScheduled, Category: CategoryMedical, Date: "2025-09-10", Time: "09:00"},
	}

	tests := []struct {
		name     string
		filter   Filter
		expected []string
	}{
		{"no filter matches all", Filter{}, []string{"a", "b", "c"}},
		{"owner", Filter{Owner: "user-1"}, []string{"a", "b"}},
		{"status", Filter{Status: StatusConfirmed}, []string{"b"}},
		{"category", Filter{Category: CategoryMedical}, []string{"a", "c"}},
		{"date range inclusive", Filter{DateFrom: "2025-09-01", DateTo: "2025-09-05"}, []string{"a", "b"}},
		{"open-ended from", Filter{DateFrom: "2025-09-05"}, []string{"b", "c"}},
		{"open-ended to", Filter{DateTo: "2025-09-04"}, []string{"a"}},
		{"combined", Filter{Owner: "user-1", Category: CategoryScreening}, []string{"b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := ListAppointments(appointments, tt.filter, 1, 50)
			require.NoError(t, err)
			ids := make([]string, 0, len(page.Items))
			for _, item := range page.Items {
				ids = append(ids, item.ID)
			}
			assert.Equal(t, tt.expected, ids)
		})
	}
}

func TestListScreenings_OrderedByNextDue(t *testing.T) {
	screenings := []models.Screening{
		{ID: "s1", OwnerID: "user-1", Type: "mammography", NextDue: date(2026, time.March, 1)},
		{ID: "s2", OwnerID: "user-1", Type: "blood_test", NextDue: date(2025, time.October, 1)},
		{ID: "s3", OwnerID: "user-2", Type: "skin_check", NextDue: date(2025, time.December, 1)},
	}

	page, err := ListScreenings(screenings, ScreeningFilter{}, 1, 10)
	require.NoError(t, err)
	require.Len(t, page.Items, 3)
	assert.Equal(t, "s2", page.Items[0].ID)
	assert.Equal(t, "s3", page.Items[1].ID)
	assert.Equal(t, "s1", page.Items[2].ID)

	owned, err := ListScreenings(screenings, ScreeningFilter{Owner: "user-1"}, 1, 10)
	require.NoError(t, err)
	assert.Len(t, owned.Items, 2)

	window, err := ListScreenings(screenings, ScreeningFilter{DueFrom: "2025-10-01", DueTo: "2025-12-01"}, 1, 10)
	require.NoError(t, err)
	assert.Len(t, window.Items, 2)
}
