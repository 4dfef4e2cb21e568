package scheduling

import (
	"sort"

	"OncoCare/models"
)

// Filter narrows an appointment listing. Zero-valued fields impose no
// constraint; DateFrom and DateTo bound the appointment date inclusively.
type Filter struct {
	Owner    string
	Status   string
	Category string
	DateFrom string
	DateTo   string
}

// ScreeningFilter narrows a screening listing. DueFrom and DueTo bound the
// next-due date inclusively (YYYY-MM-DD).
type ScreeningFilter struct {
	Owner   string
	Type    string
	DueFrom string
	DueTo   string
}

// AppointmentPage is one page of a deterministic appointment listing.
type AppointmentPage struct {
	Items      []models.Appointment `json:"items"`
	Page       int                  `json:"page"`
	PageSize   int                  `json:"page_size"`
	Total      int                  `json:"total"`
	TotalPages int                  `json:"total_pages"`
}

// ScreeningPage is one page of a screening listing ordered by next-due date.
type ScreeningPage struct {
	Items      []models.Screening `json:"items"`
	Page       int                `json:"page"`
	PageSize   int                `json:"page_size"`
	Total      int                `json:"total"`
	TotalPages int                `json:"total_pages"`
}

// Matches reports whether an appointment satisfies every set filter field.
func (f Filter) Matches(a *models.Appointment) bool {
	if f.Owner != "" && a.OwnerID != f.Owner {
		return false
	}
	if f.Status != "" && a.Status != f.Status {
		return false
	}
	if f.Category != "" && a.Category != f.Category {
		return false
	}
	if f.DateFrom != "" && a.Date < f.DateFrom {
		return false
	}
	if f.DateTo != "" && a.Date > f.DateTo {
		return false
	}
	return true
}

// Matches reports whether a screening satisfies every set filter field.
func (f ScreeningFilter) Matches(s *models.Screening) bool {
	if f.Owner != "" && s.OwnerID != f.Owner {
		return false
	}
	if f.Type != "" && s.Type != f.Type {
		return false
	}
	due := s.NextDue.Format("2006-01-02")
	if f.DueFrom != "" && due < f.DueFrom {
		return false
	}
	if f.DueTo != "" && due > f.DueTo {
		return false
	}
	return true
}

// ListAppointments filters, orders, and paginates appointments. Ordering is
// ascending by date then time, with the ID as a tie breaker so equal slots
// page deterministically.
func ListAppointments(appointments []models.Appointment, filter Filter, page, pageSize int) (*AppointmentPage, error) {
	if page < 1 || pageSize < 1 {
		return nil, ErrInvalidPagination
	}

	matched := make([]models.Appointment, 0, len(appointments))
	for _, a := range appointments {
		if filter.Matches(&a) {
			matched = append(matched, a)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].Date != matched[j].Date {
			return matched[i].Date < matched[j].Date
		}
		if matched[i].Time != matched[j].Time {
			return matched[i].Time < matched[j].Time
		}
		return matched[i].ID < matched[j].ID
	})

	total := len(matched)
	start, end := pageBounds(total, page, pageSize)
	return &AppointmentPage{
		Items:      matched[start:end],
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages(total, pageSize),
	}, nil
}

// ListScreenings filters, orders, and paginates screenings ascending by
// next-due date.
func ListScreenings(screenings []models.Screening, filter ScreeningFilter, page, pageSize int) (*ScreeningPage, error) {
	if page < 1 || pageSize < 1 {
		return nil, ErrInvalidPagination
	}

	matched := make([]models.Screening, 0, len(screenings))
	for _, s := range screenings {
		if filter.Matches(&s) {
			matched = append(matched, s)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].NextDue.Equal(matched[j].NextDue) {
			return matched[i].NextDue.Before(matched[j].NextDue)
		}
		return matched[i].ID < matched[j].ID
	})

	total := len(matched)
	start, end := pageBounds(total, page, pageSize)
	return &ScreeningPage{
		Items:      matched[start:end],
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages(total, pageSize),
	}, nil
}

// pageBounds returns the slice window for a page. A page past the end yields
// an empty window rather than an error.
func pageBounds(total, page, pageSize int) (int, int) {
	start := (page - 1) * pageSize
	if start > total {
		return total, total
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	return start, end
}

func totalPages(total, pageSize int) int {
	return (total + pageSize - 1) / pageSize
}
