package services

import (
	"context"
	"fmt"

	"OncoCare/models"
	"OncoCare/repositories"
	"OncoCare/utils"
)

type VideoService struct {
	repository *repositories.VideoRepository
}

func NewVideoService(repository *repositories.VideoRepository) *VideoService {
	return &VideoService{repository: repository}
}

func (s *VideoService) Create(ctx context.Context, video *models.Video) error {
	if err := utils.ValidateVideoData(*video); err != nil {
		return fmt.Errorf("invalid video data: %w", err)
	}
	return s.repository.Create(ctx, video)
}

// GetByID fetches a video and counts the view.
func (s *VideoService) GetByID(ctx context.Context, id string) (*models.Video, error) {
	video, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.repository.IncrementViews(ctx, id); err != nil {
		return nil, err
	}
	video.Views++
	return video, nil
}

func (s *VideoService) GetAll(ctx context.Context, category string) ([]models.Video, error) {
	return s.repository.GetAll(ctx, category)
}

func (s *VideoService) Update(ctx context.Context, video *models.Video) error {
	if err := utils.ValidateVideoData(*video); err != nil {
		return fmt.Errorf("invalid video data: %w", err)
	}
	return s.repository.Update(ctx, video)
}

func (s *VideoService) Like(ctx context.Context, id string) error {
	return s.repository.IncrementLikes(ctx, id)
}

func (s *VideoService) Delete(ctx context.Context, id string) error {
	return s.repository.Delete(ctx, id)
}
