package scheduling

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"OncoCare/models"
)

// Store is an in-memory entity store for appointments and screenings. Each
// operation touches a single record under one lock, so concurrent transition
// attempts on the same appointment cannot produce lost updates.
type Store struct {
	mu           sync.RWMutex
	appointments map[string]models.Appointment
	screenings   map[string]models.Screening
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		appointments: make(map[string]models.Appointment),
		screenings:   make(map[string]models.Screening),
	}
}

// CreateAppointment inserts an appointment, assigning an ID when absent. An
// appointment without an owner cannot exist.
func (s *Store) CreateAppointment(appointment *models.Appointment) error {
	if appointment.OwnerID == "" {
		return errors.New("appointment owner is required")
	}
	if appointment.ID == "" {
		appointment.ID = uuid.New().String()
	}
	if appointment.Status == "" {
		appointment.Status = StatusScheduled
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.appointments[appointment.ID] = *appointment
	return nil
}

// GetAppointment fetches one appointment scoped to its owner.
func (s *Store) GetAppointment(ownerID, id string) (*models.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	appointment, ok := s.appointments[id]
	if !ok || appointment.OwnerID != ownerID {
		return nil, ErrNotFound
	}
	return &appointment, nil
}

// UpdateAppointment replaces a stored appointment's mutable details. Status
// is deliberately carried over from the stored record; status changes go
// through TransitionAppointment only.
func (s *Store) UpdateAppointment(appointment *models.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.appointments[appointment.ID]
	if !ok || stored.OwnerID != appointment.OwnerID {
		return ErrNotFound
	}
	appointment.Status = stored.Status
	appointment.CreatedAt = stored.CreatedAt
	s.appointments[appointment.ID] = *appointment
	return nil
}

// TransitionAppointment applies a lifecycle transition atomically.
func (s *Store) TransitionAppointment(ownerID, id, to string) (*models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	appointment, ok := s.appointments[id]
	if !ok || appointment.OwnerID != ownerID {
		return nil, ErrNotFound
	}
	if err := Transition(&appointment, to); err != nil {
		return nil, err
	}
	s.appointments[id] = appointment
	return &appointment, nil
}

// DeleteAppointment removes one appointment scoped to its owner.
func (s *Store) DeleteAppointment(ownerID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	appointment, ok := s.appointments[id]
	if !ok || appointment.OwnerID != ownerID {
		return ErrNotFound
	}
	delete(s.appointments, id)
	return nil
}

// ListAppointments serves a filtered, paginated appointment listing.
func (s *Store) ListAppointments(filter Filter, page, pageSize int) (*AppointmentPage, error) {
	s.mu.RLock()
	all := make([]models.Appointment, 0, len(s.appointments))
	for _, appointment := range s.appointments {
		all = append(all, appointment)
	}
	s.mu.RUnlock()

	return ListAppointments(all, filter, page, pageSize)
}

// CreateScreening inserts a screening, assigning an ID when absent.
func (s *Store) CreateScreening(screening *models.Screening) error {
	if screening.OwnerID == "" {
		return errors.New("screening owner is required")
	}
	if screening.ID == "" {
		screening.ID = uuid.New().String()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.screenings[screening.ID] = *screening
	return nil
}

// GetScreening fetches one screening scoped to its owner.
func (s *Store) GetScreening(ownerID, id string) (*models.Screening, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	screening, ok := s.screenings[id]
	if !ok || screening.OwnerID != ownerID {
		return nil, ErrNotFound
	}
	return &screening, nil
}

// CompleteScreening records a completion and recomputes the next-due date
// atomically.
func (s *Store) CompleteScreening(ownerID, id string, completedAt, now time.Time) (*models.Screening, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	screening, ok := s.screenings[id]
	if !ok || screening.OwnerID != ownerID {
		return nil, ErrNotFound
	}
	if err := RecordCompletion(&screening, completedAt, now); err != nil {
		return nil, err
	}
	s.screenings[id] = screening
	return &screening, nil
}

// DeleteScreening removes one screening scoped to its owner.
func (s *Store) DeleteScreening(ownerID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	screening, ok := s.screenings[id]
	if !ok || screening.OwnerID != ownerID {
		return ErrNotFound
	}
	delete(s.screenings, id)
	return nil
}

// ListScreenings serves a filtered, paginated screening listing.
func (s *Store) ListScreenings(filter ScreeningFilter, page, pageSize int) (*ScreeningPage, error) {
	s.mu.RLock()
	all := make([]models.Screening, 0, len(s.screenings))
	for _, screening := range s.screenings {
		all = append(all, screening)
	}
	s.mu.RUnlock()

	return ListScreenings(all, filter, page, pageSize)
}
