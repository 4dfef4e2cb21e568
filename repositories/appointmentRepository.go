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
	AppointmentCacheExpiry = 24 * time.Hour
)

type AppointmentRepository struct {
	cache *cache.Cache
}

func NewAppointmentRepository(cache *cache.Cache) *AppointmentRepository {
	return &AppointmentRepository{cache: cache}
}

func (r *AppointmentRepository) Create(ctx context.Context, appointment *models.Appointment) error {
	if appointment.ID == "" {
		appointment.ID = uuid.New().String()
	}
	if appointment.Status == "" {
		appointment.Status = scheduling.StatusScheduled
	}

	lockKey := fmt.Sprintf("appointment_lock:%s_%s", appointment.OwnerID, appointment.ID)
	return withLock(ctx, lockKey, func() error {
		if err := database.DB.Create(appointment).Error; err != nil {
			return fmt.Errorf("failed to create appointment: %w", err)
		}
		return r.invalidate(ctx, appointment.OwnerID, appointment.ID)
	})
}

func (r *AppointmentRepository) GetByID(ctx context.Context, ownerID, id string) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := r.getAppointmentCacheKey(ownerID, id)
	var cached models.Appointment
	if err := r.cache.GetJSON(ctx, cacheKey, &cached); err == nil {
		return &cached, nil
	} else if !errors.Is(err, cache.ErrMiss) {
		log.Printf("Failed to get appointment from cache: %v", err)
	}

	var appointment models.Appointment
	err := database.DB.
		First(&appointment, "id = ? AND owner_id = ?", id, ownerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, scheduling.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}

	if err := r.cache.SetJSON(ctx, cacheKey, appointment, AppointmentCacheExpiry); err != nil {
		log.Printf("Failed to set appointment in cache: %v", err)
	}

	return &appointment, nil
}

// List translates a scheduling filter into a paginated query ordered
// ascending by (date, time).
func (r *AppointmentRepository) List(ctx context.Context, filter scheduling.Filter, page, pageSize int) (*scheduling.AppointmentPage, error) {
	if page < 1 || pageSize < 1 {
		return nil, scheduling.ErrInvalidPagination
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := r.getListCacheKey(filter, page, pageSize)
	var cached scheduling.AppointmentPage
	if err := r.cache.GetJSON(ctx, cacheKey, &cached); err == nil {
		return &cached, nil
	} else if !errors.Is(err, cache.ErrMiss) {
		log.Printf("Failed to get appointments from cache: %v", err)
	}

	query := database.DB.WithContext(ctx).Model(&models.Appointment{})
	if filter.Owner != "" {
		query = query.Where("owner_id = ?", filter.Owner)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.DateFrom != "" {
		query = query.Where("date >= ?", filter.DateFrom)
	}
	if filter.DateTo != "" {
		query = query.Where("date <= ?", filter.DateTo)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count appointments: %w", err)
	}

	var items []models.Appointment
	err := query.Order("date ASC, time ASC, id ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}

	result := &scheduling.AppointmentPage{
		Items:      items,
		Page:       page,
		PageSize:   pageSize,
		Total:      int(total),
		TotalPages: (int(total) + pageSize - 1) / pageSize,
	}

	if err := r.cache.SetJSON(ctx, cacheKey, result, AppointmentCacheExpiry); err != nil {
		log.Printf("Failed to set appointments in cache: %v", err)
	}

	return result, nil
}

// appointmentUpdateColumns maps every mutable appointment column for an
// update. Status is deliberately absent; only UpdateStatus may write it.
func appointmentUpdateColumns(appointment *models.Appointment) map[string]interface{} {
	return map[string]interface{}{
		"title":                  appointment.Title,
		"category":               appointment.Category,
		"date":                   appointment.Date,
		"time":                   appointment.Time,
		"duration_minutes":       appointment.DurationMinutes,
		"location_name":          appointment.Location.Name,
		"location_address":       appointment.Location.Address,
		"location_phone":         appointment.Location.Phone,
		"location_kind":          appointment.Location.Kind,
		"practitioner_name":      appointment.Practitioner.Name,
		"practitioner_specialty": appointment.Practitioner.Specialty,
		"practitioner_phone":     appointment.Practitioner.Phone,
		"practitioner_email":     appointment.Practitioner.Email,
		"notes":                  appointment.Notes,
		"reminders_enabled":      appointment.RemindersEnabled,
		"reminder_lead_times":    appointment.ReminderLeadTimes,
	}
}

// UpdateDetails updates everything except Status, which only UpdateStatus may
// touch.
func (r *AppointmentRepository) UpdateDetails(ctx context.Context, appointment *models.Appointment) error {
	lockKey := fmt.Sprintf("appointment_lock:%s_%s", appointment.OwnerID, appointment.ID)
	return withLock(ctx, lockKey, func() error {
		result := database.DB.Model(&models.Appointment{}).
			Where("id = ? AND owner_id = ?", appointment.ID, appointment.OwnerID).
			Updates(appointmentUpdateColumns(appointment))
		if result.Error != nil {
			return fmt.Errorf("failed to update appointment: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return scheduling.ErrNotFound
		}
		return r.invalidate(ctx, appointment.OwnerID, appointment.ID)
	})
}

// UpdateStatus performs a guarded status write: the update only lands when
// the stored status still equals the validated from-state, so concurrent
// transition attempts cannot produce a lost update.
func (r *AppointmentRepository) UpdateStatus(ctx context.Context, ownerID, id, from, to string) error {
	lockKey := fmt.Sprintf("appointment_lock:%s_%s", ownerID, id)
	return withLock(ctx, lockKey, func() error {
		result := database.DB.Model(&models.Appointment{}).
			Where("id = ? AND owner_id = ? AND status = ?", id, ownerID, from).
			Update("status", to)
		if result.Error != nil {
			return fmt.Errorf("failed to update appointment status: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("appointment %s: %w", id, scheduling.ErrStatusConflict)
		}
		return r.invalidate(ctx, ownerID, id)
	})
}

func (r *AppointmentRepository) Delete(ctx context.Context, ownerID, id string) error {
	lockKey := fmt.Sprintf("appointment_lock:%s_%s", ownerID, id)
	return withLock(ctx, lockKey, func() error {
		result := database.DB.Delete(&models.Appointment{}, "id = ? AND owner_id = ?", id, ownerID)
		if result.Error != nil {
			return fmt.Errorf("failed to delete appointment: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return scheduling.ErrNotFound
		}
		return r.invalidate(ctx, ownerID, id)
	})
}

func (r *AppointmentRepository) invalidate(ctx context.Context, ownerID, id string) error {
	if err := r.cache.Delete(ctx, r.getAppointmentCacheKey(ownerID, id)); err != nil {
		return fmt.Errorf("failed to delete appointment cache: %w", err)
	}
	return r.cache.DeleteAll(ctx, "appointment_list_cache:*")
}

func (r *AppointmentRepository) getAppointmentCacheKey(ownerID, id string) string {
	return fmt.Sprintf("appointment_cache:%s_%s", ownerID, id)
}

func (r *AppointmentRepository) getListCacheKey(filter scheduling.Filter, page, pageSize int) string {
	return fmt.Sprintf("appointment_list_cache:%s_%s_%s_%s_%s_%d_%d",
		filter.Owner, filter.Status, filter.Category, filter.DateFrom, filter.DateTo, page, pageSize)
}
