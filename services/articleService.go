package services

import (
	"context"
	"fmt"

	"OncoCare/models"
	"OncoCare/repositories"
	"OncoCare/utils"
)

type ArticleService struct {
	repository *repositories.ArticleRepository
}

func NewArticleService(repository *repositories.ArticleRepository) *ArticleService {
	return &ArticleService{repository: repository}
}

func (s *ArticleService) Create(ctx context.Context, article *models.Article) error {
	if err := utils.ValidateArticleData(*article); err != nil {
		return fmt.Errorf("invalid article data: %w", err)
	}
	return s.repository.Create(ctx, article)
}

// GetByID fetches an article and counts the read.
func (s *ArticleService) GetByID(ctx context.Context, id string) (*models.Article, error) {
	article, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.repository.IncrementViews(ctx, id); err != nil {
		return nil, err
	}
	article.Views++
	return article, nil
}

func (s *ArticleService) GetAll(ctx context.Context, category string) ([]models.Article, error) {
	return s.repository.GetAll(ctx, category)
}

func (s *ArticleService) Update(ctx context.Context, article *models.Article) error {
	if err := utils.ValidateArticleData(*article); err != nil {
		return fmt.Errorf("invalid article data: %w", err)
	}
	return s.repository.Update(ctx, article)
}

func (s *ArticleService) Like(ctx context.Context, id string) error {
	return s.repository.IncrementLikes(ctx, id)
}

func (s *ArticleService) Delete(ctx context.Context, id string) error {
	return s.repository.Delete(ctx, id)
}
