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

type ScreeningService struct {
	repository *repositories.ScreeningRepository
}

func NewScreeningService(repository *repositories.ScreeningRepository) *ScreeningService {
	return &ScreeningService{repository: repository}
}

// Create enrolls a screening. With no prior completion, the next-due date
// anchors to the enrollment time.
func (s *ScreeningService) Create(ctx context.Context, screening *models.Screening, now time.Time) error {
	if err := utils.ValidateScreeningData(*screening); err != nil {
		return fmt.Errorf("invalid screening data: %w", err)
	}

	months, ok := scheduling.FrequencyMonths(screening.Frequency)
	if !ok {
		return fmt.Errorf("unknown screening frequency %q", screening.Frequency)
	}
	screening.NextDue = scheduling.NextDue(screening.LastCompleted, months, now)
	screening.ReminderSent = false

	return s.repository.Create(ctx, screening)
}

func (s *ScreeningService) GetByID(ctx context.Context, ownerID, id string) (*models.Screening, error) {
	return s.repository.GetByID(ctx, ownerID, id)
}

func (s *ScreeningService) List(ctx context.Context, filter scheduling.ScreeningFilter, page, pageSize int) (*scheduling.ScreeningPage, error) {
	return s.repository.List(ctx, filter, page, pageSize)
}

// UpdateDetails changes the declared cadence; the next-due date is
// recomputed from the same anchor so the result stays consistent.
func (s *ScreeningService) UpdateDetails(ctx context.Context, screening *models.Screening, now time.Time) error {
	if err := utils.ValidateScreeningData(*screening); err != nil {
		return fmt.Errorf("invalid screening data: %w", err)
	}

	current, err := s.repository.GetByID(ctx, screening.OwnerID, screening.ID)
	if err != nil {
		return err
	}

	months, ok := scheduling.FrequencyMonths(screening.Frequency)
	if !ok {
		return fmt.Errorf("unknown screening frequency %q", screening.Frequency)
	}
	screening.LastCompleted = current.LastCompleted
	screening.NextDue = scheduling.NextDue(current.LastCompleted, months, now)

	return s.repository.UpdateDetails(ctx, screening)
}

// RecordCompletion marks the screening done, stores the result, and
// recomputes the next-due date.
func (s *ScreeningService) RecordCompletion(ctx context.Context, ownerID, id string, completedAt, now time.Time, result models.ScreeningResult) (*models.Screening, error) {
	screening, err := s.repository.GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if err := scheduling.RecordCompletion(screening, completedAt, now); err != nil {
		return nil, err
	}
	screening.Result = result

	if err := s.repository.SaveCompletion(ctx, screening); err != nil {
		return nil, err
	}
	return screening, nil
}

// DueScreening pairs a screening with its classified due state.
type DueScreening struct {
	Screening models.Screening    `json:"screening"`
	State     scheduling.DueState `json:"state"`
}

// dueListPageSize is the page size ListDue walks the owner's screenings with.
const dueListPageSize = 200

// ListDue returns every screening for an owner paired with its due state
// (upcoming, due today, or overdue) against the given time. Classification
// never mutates storage; due state is recomputed on read.
func (s *ScreeningService) ListDue(ctx context.Context, ownerID string, now time.Time) ([]DueScreening, error) {
	filter := scheduling.ScreeningFilter{Owner: ownerID}

	var due []DueScreening
	for page := 1; ; page++ {
		result, err := s.repository.List(ctx, filter, page, dueListPageSize)
		if err != nil {
			return nil, err
		}
		due = append(due, classifyScreenings(result.Items, now)...)
		if page >= result.TotalPages {
			break
		}
	}
	return due, nil
}

// classifyScreenings pairs each screening with its due state at now.
func classifyScreenings(items []models.Screening, now time.Time) []DueScreening {
	due := make([]DueScreening, 0, len(items))
	for _, screening := range items {
		due = append(due, DueScreening{
			Screening: screening,
			State:     scheduling.Classify(now, screening.NextDue),
		})
	}
	return due
}

func (s *ScreeningService) Delete(ctx context.Context, ownerID, id string) error {
	return s.repository.Delete(ctx, ownerID, id)
}
