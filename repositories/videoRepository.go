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
	VideoCacheExpiry = 24 * time.Hour
)

type VideoRepository struct {
	cache *cache.Cache
}

func NewVideoRepository(cache *cache.Cache) *VideoRepository {
	return &VideoRepository{cache: cache}
}

func (r *VideoRepository) Create(ctx context.Context, video *models.Video) error {
	if video.ID == "" {
		video.ID = uuid.New().String()
	}
	if err := database.DB.Create(video).Error; err != nil {
		return fmt.Errorf("failed to create video: %w", err)
	}
	return r.cache.DeleteAll(ctx, "videos_cache*")
}

func (r *VideoRepository) GetByID(ctx context.Context, id string) (*models.Video, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := r.getVideoCacheKey(id)
	var cached models.Video
	if err := r.cache.GetJSON(ctx, cacheKey, &cached); err == nil {
		return &cached, nil
	} else if !errors.Is(err, cache.ErrMiss) {
		log.Printf("Failed to get video from cache: %v", err)
	}

	var video models.Video
	err := database.DB.First(&video, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, scheduling.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get video: %w", err)
	}

	if err := r.cache.SetJSON(ctx, cacheKey, video, VideoCacheExpiry); err != nil {
		log.Printf("Failed to set video in cache: %v", err)
	}

	return &video, nil
}

func (r *VideoRepository) GetAll(ctx context.Context, category string) ([]models.Video, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := "videos_cache"
	if category != "" {
		cacheKey = "videos_cache:" + category
	}
	var cached []models.Video
	if err := r.cache.GetJSON(ctx, cacheKey, &cached); err == nil {
		return cached, nil
	} else if !errors.Is(err, cache.ErrMiss) {
		log.Printf("Failed to get videos from cache: %v", err)
	}

	query := database.DB.WithContext(ctx).Model(&models.Video{})
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var videos []models.Video
	if err := query.Order("created_at DESC").Find(&videos).Error; err != nil {
		return nil, fmt.Errorf("failed to get all videos: %w", err)
	}

	if err := r.cache.SetJSON(ctx, cacheKey, videos, VideoCacheExpiry); err != nil {
		log.Printf("Failed to set videos in cache: %v", err)
	}

	return videos, nil
}

func (r *VideoRepository) Update(ctx context.Context, video *models.Video) error {
	result := database.DB.Model(&models.Video{}).
		Where("id = ?", video.ID).
		Updates(map[string]interface{}{
			"title":            video.Title,
			"description":      video.Description,
			"url":              video.URL,
			"duration_seconds": video.DurationSeconds,
			"category":         video.Category,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update video: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return scheduling.ErrNotFound
	}
	return r.invalidate(ctx, video.ID)
}

// IncrementLikes bumps the like counter in SQL so concurrent likes cannot
// lose updates.
func (r *VideoRepository) IncrementLikes(ctx context.Context, id string) error {
	result := database.DB.Model(&models.Video{}).
		Where("id = ?", id).
		UpdateColumn("likes", gorm.Expr("likes + 1"))
	if result.Error != nil {
		return fmt.Errorf("failed to increment video likes: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return scheduling.ErrNotFound
	}
	return r.invalidate(ctx, id)
}

// IncrementViews bumps the view counter in SQL.
func (r *VideoRepository) IncrementViews(ctx context.Context, id string) error {
	result := database.DB.Model(&models.Video{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1"))
	if result.Error != nil {
		return fmt.Errorf("failed to increment video views: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return scheduling.ErrNotFound
	}
	return r.invalidate(ctx, id)
}

func (r *VideoRepository) Delete(ctx context.Context, id string) error {
	result := database.DB.Delete(&models.Video{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete video: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return scheduling.ErrNotFound
	}
	return r.invalidate(ctx, id)
}

func (r *VideoRepository) invalidate(ctx context.Context, id string) error {
	if err := r.cache.Delete(ctx, r.getVideoCacheKey(id)); err != nil {
		return fmt.Errorf("failed to delete video cache: %w", err)
	}
	return r.cache.DeleteAll(ctx, "videos_cache*")
}

func (r *VideoRepository) getVideoCacheKey(id string) string {
	return fmt.Sprintf("video_cache:%s", id)
}
