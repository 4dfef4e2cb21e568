package repositories

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"OncoCare/cache"
	"OncoCare/database"
	"OncoCare/models"
	"OncoCare/scheduling"
)

const (
	ScreeningCacheExpiry = 24 * time.Hour
)

type ScreeningRepository struct {
	cache *cache.Cache
}

func NewScreeningRepository(cache *cache.Cache) *ScreeningRepository {
	return &ScreeningRepository{cache: cache}
}

func (r *ScreeningRepository) Create(ctx context.Context, screening *models.Screening) error {
	if screening.ID == "" {
		screening.ID = uuid.New().String()
	}

	lockKey := fmt.Sprintf("screening_lock:%s_%s", screening.OwnerID, screening.ID)
	return withLock(ctx, lockKey, func() error {
		if err := database.DB.Create(screening).Error; err != nil {
			return fmt.Errorf("failed to create screening: %w", err)
		}
		return r.invalidate(ctx, screening.OwnerID, screening.ID)
	})
}

func (r *ScreeningRepository) GetByID(ctx context.Context, ownerID, id string) (*models.Screening, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := r.getScreeningCacheKey(ownerID, id)
	var cached models.Screening
	if err := r.cache.GetJSON(ctx, cacheKey, &cached); err == nil {
		return &cached, nil
	} else if !errors.Is(err, cache.ErrMiss) {
		log.Printf("Failed to get screening from cache: %v", err)
	}

	var screening models.Screening
	err := database.DB.First(&screening, "id = ? AND owner_id = ?", id, ownerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, scheduling.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get screening: %w", err)
	}

	if err := r.cache.SetJSON(ctx, cacheKey, screening, ScreeningCacheExpiry); err != nil {
		log.Printf("Failed to set screening in cache: %v", err)
	}

	return &screening, nil
}

// List serves a paginated screening listing ordered ascending by next-due
// date.
func (r *ScreeningRepository) List(ctx context.Context, filter scheduling.ScreeningFilter, page, pageSize int) (*scheduling.ScreeningPage, error) {
	if page < 1 || pageSize < 1 {
		return nil, scheduling.ErrInvalidPagination
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	query := database.DB.WithContext(ctx).Model(&models.Screening{})
	if filter.Owner != "" {
		query = query.Where("owner_id = ?", filter.Owner)
	}
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.DueFrom != "" {
		query = query.Where("next_due >= ?", filter.DueFrom)
	}
	if filter.DueTo != "" {
		query = query.Where("next_due <= ?", filter.DueTo+" 23:59:59")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count screenings: %w", err)
	}

	var items []models.Screening
	err := query.Order("next_due ASC, id ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list screenings: %w", err)
	}

	return &scheduling.ScreeningPage{
		Items:      items,
		Page:       page,
		PageSize:   pageSize,
		Total:      int(total),
		TotalPages: (int(total) + pageSize - 1) / pageSize,
	}, nil
}

// UpdateDetails updates the declared cadence and result fields. Completion
// bookkeeping (last_completed, next_due, reminder_sent) goes through
// SaveCompletion.
func (r *ScreeningRepository) UpdateDetails(ctx context.Context, screening *models.Screening) error {
	lockKey := fmt.Sprintf("screening_lock:%s_%s", screening.OwnerID, screening.ID)
	return withLock(ctx, lockKey, func() error {
		result := database.DB.Model(&models.Screening{}).
			Where("id = ? AND owner_id = ?", screening.ID, screening.OwnerID).
			Updates(map[string]interface{}{
				"type":          screening.Type,
				"frequency":     screening.Frequency,
				"next_due":      screening.NextDue,
				"result_status": screening.Result.Status,
				"result_notes":  screening.Result.Notes,
			})
		if result.Error != nil {
			return fmt.Errorf("failed to update screening: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return scheduling.ErrNotFound
		}
		return r.invalidate(ctx, screening.OwnerID, screening.ID)
	})
}

// SaveCompletion persists the fields RecordCompletion mutated.
func (r *ScreeningRepository) SaveCompletion(ctx context.Context, screening *models.Screening) error {
	lockKey := fmt.Sprintf("screening_lock:%s_%s", screening.OwnerID, screening.ID)
	return withLock(ctx, lockKey, func() error {
		result := database.DB.Model(&models.Screening{}).
			Where("id = ? AND owner_id = ?", screening.ID, screening.OwnerID).
			Updates(map[string]interface{}{
				"last_completed": screening.LastCompleted,
				"next_due":       screening.NextDue,
				"reminder_sent":  screening.ReminderSent,
				"result_status":  screening.Result.Status,
				"result_notes":   screening.Result.Notes,
			})
		if result.Error != nil {
			return fmt.Errorf("failed to record screening completion: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return scheduling.ErrNotFound
		}
		return r.invalidate(ctx, screening.OwnerID, screening.ID)
	})
}

// MarkReminderSent flips the reminder flag once a due notice has gone out.
func (r *ScreeningRepository) MarkReminderSent(ctx context.Context, ownerID, id string) error {
	result := database.DB.Model(&models.Screening{}).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Update("reminder_sent", true)
	if result.Error != nil {
		return fmt.Errorf("failed to mark reminder sent: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return scheduling.ErrNotFound
	}
	return r.invalidate(ctx, ownerID, id)
}

func (r *ScreeningRepository) Delete(ctx context.Context, ownerID, id string) error {
	lockKey := fmt.Sprintf("screening_lock:%s_%s", ownerID, id)
	return withLock(ctx, lockKey, func() error {
		result := database.DB.Delete(&models.Screening{}, "id = ? AND owner_id = ?", id, ownerID)
		if result.Error != nil {
			return fmt.Errorf("failed to delete screening: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return scheduling.ErrNotFound
		}
		return r.invalidate(ctx, ownerID, id)
	})
}

func (r *ScreeningRepository) invalidate(ctx context.Context, ownerID, id string) error {
	if err := r.cache.Delete(ctx, r.getScreeningCacheKey(ownerID, id)); err != nil {
		return fmt.Errorf("failed to delete screening cache: %w", err)
	}
	return nil
}

func (r *ScreeningRepository) getScreeningCacheKey(ownerID, id string) string {
	return fmt.Sprintf("screening_cache:%s_%s", ownerID, id)
}
