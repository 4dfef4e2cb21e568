package services

import (
	"context"
	"fmt"
	"time"

	"OncoCare/models"
	"OncoCare/repositories"
	"OncoCare/scheduling"
	"OncoCare/utils"
)

type AppointmentService struct {
	repository *repositories.AppointmentRepository
}

func NewAppointmentService(repository *repositories.AppointmentRepository) *AppointmentService {
	return &AppointmentService{repository: repository}
}

func (s *AppointmentService) Create(ctx context.Context, appointment *models.Appointment) error {
	appointment.Status = scheduling.StatusScheduled
	if err := utils.ValidateAppointmentData(*appointment); err != nil {
		return fmt.Errorf("invalid appointment data: %w", err)
	}
	return s.repository.Create(ctx, appointment)
}

func (s *AppointmentService) GetByID(ctx context.Context, ownerID, id string) (*models.Appointment, error) {
	return s.repository.GetByID(ctx, ownerID, id)
}

func (s *AppointmentService) List(ctx context.Context, filter scheduling.Filter, page, pageSize int) (*scheduling.AppointmentPage, error) {
	return s.repository.List(ctx, filter, page, pageSize)
}

// UpdateDetails changes everything but Status; status changes go through
// Transition.
func (s *AppointmentService) UpdateDetails(ctx context.Context, appointment *models.Appointment) error {
	current, err := s.repository.GetByID(ctx, appointment.OwnerID, appointment.ID)
	if err != nil {
		return err
	}
	appointment.Status = current.Status
	if err := utils.ValidateAppointmentData(*appointment); err != nil {
		return fmt.Errorf("invalid appointment data: %w", err)
	}
	return s.repository.UpdateDetails(ctx, appointment)
}

// Transition validates a lifecycle change against the transition table and
// persists it with a status guard. Rescheduling also takes the new slot.
func (s *AppointmentService) Transition(ctx context.Context, ownerID, id, to, newDate, newTime string) (*models.Appointment, error) {
	appointment, err := s.repository.GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	from := appointment.Status
	if err := scheduling.Transition(appointment, to); err != nil {
		return nil, err
	}

	if to == scheduling.StatusRescheduled && newDate != "" {
		appointment.Date = newDate
		appointment.Time = newTime
		if err := utils.ValidateAppointmentData(*appointment); err != nil {
			return nil, fmt.Errorf("invalid appointment data: %w", err)
		}
		if err := s.repository.UpdateDetails(ctx, appointment); err != nil {
			return nil, err
		}
	}

	if err := s.repository.UpdateStatus(ctx, ownerID, id, from, to); err != nil {
		return nil, err
	}
	return s.repository.GetByID(ctx, ownerID, id)
}

// ReminderTimes computes the instants at which reminders should fire for one
// appointment.
func (s *AppointmentService) ReminderTimes(ctx context.Context, ownerID, id string) ([]time.Time, error) {
	appointment, err := s.repository.GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	return scheduling.ReminderTimes(appointment)
}

// SendReminder emails the owner about an upcoming appointment.
func (s *AppointmentService) SendReminder(ctx context.Context, ownerID, id, email string) error {
	appointment, err := s.repository.GetByID(ctx, ownerID, id)
	if err != nil {
		return err
	}
	return utils.SendAppointmentReminderEmail(email, appointment)
}

func (s *AppointmentService) Delete(ctx context.Context, ownerID, id string) error {
	return s.repository.Delete(ctx, ownerID, id)
}
