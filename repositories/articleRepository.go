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
	ArticleCacheExpiry = 24 * time.Hour
)

type ArticleRepository struct {
	cache *cache.Cache
}

func NewArticleRepository(cache *cache.Cache) *ArticleRepository {
	return &ArticleRepository{cache: cache}
}

func (r *ArticleRepository) Create(ctx context.Context, article *models.Article) error {
	if article.ID == "" {
		article.ID = uuid.New().String()
	}
	if err := database.DB.Create(article).Error; err != nil {
		return fmt.Errorf("failed to create article: %w", err)
	}
	return r.cache.DeleteAll(ctx, "articles_cache*")
}

func (r *ArticleRepository) GetByID(ctx context.Context, id string) (*models.Article, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := r.getArticleCacheKey(id)
	var cached models.Article
	if err := r.cache.GetJSON(ctx, cacheKey, &cached); err == nil {
		return &cached, nil
	} else if !errors.Is(err, cache.ErrMiss) {
		log.Printf("Failed to get article from cache: %v", err)
	}

	var article models.Article
	err := database.DB.First(&article, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, scheduling.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get article: %w", err)
	}

	if err := r.cache.SetJSON(ctx, cacheKey, article, ArticleCacheExpiry); err != nil {
		log.Printf("Failed to set article in cache: %v", err)
	}

	return &article, nil
}

func (r *ArticleRepository) GetAll(ctx context.Context, category string) ([]models.Article, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := "articles_cache"
	if category != "" {
		cacheKey = "articles_cache:" + category
	}
	var cached []models.Article
	if err := r.cache.GetJSON(ctx, cacheKey, &cached); err == nil {
		return cached, nil
	} else if !errors.Is(err, cache.ErrMiss) {
		log.Printf("Failed to get articles from cache: %v", err)
	}

	query := database.DB.WithContext(ctx).Model(&models.Article{})
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var articles []models.Article
	if err := query.Order("created_at DESC").Find(&articles).Error; err != nil {
		return nil, fmt.Errorf("failed to get all articles: %w", err)
	}

	if err := r.cache.SetJSON(ctx, cacheKey, articles, ArticleCacheExpiry); err != nil {
		log.Printf("Failed to set articles in cache: %v", err)
	}

	return articles, nil
}

func (r *ArticleRepository) Update(ctx context.Context, article *models.Article) error {
	result := database.DB.Model(&models.Article{}).
		Where("id = ?", article.ID).
		Updates(map[string]interface{}{
			"title":    article.Title,
			"summary":  article.Summary,
			"body":     article.Body,
			"category": article.Category,
			"author":   article.Author,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update article: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return scheduling.ErrNotFound
	}
	return r.invalidate(ctx, article.ID)
}

// IncrementLikes bumps the like counter in SQL so concurrent likes cannot
// lose updates.
func (r *ArticleRepository) IncrementLikes(ctx context.Context, id string) error {
	result := database.DB.Model(&models.Article{}).
		Where("id = ?", id).
		UpdateColumn("likes", gorm.Expr("likes + 1"))
	if result.Error != nil {
		return fmt.Errorf("failed to increment article likes: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return scheduling.ErrNotFound
	}
	return r.invalidate(ctx, id)
}

// IncrementViews bumps the view counter in SQL.
func (r *ArticleRepository) IncrementViews(ctx context.Context, id string) error {
	result := database.DB.Model(&models.Article{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1"))
	if result.Error != nil {
		return fmt.Errorf("failed to increment article views: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return scheduling.ErrNotFound
	}
	return r.invalidate(ctx, id)
}

func (r *ArticleRepository) Delete(ctx context.Context, id string) error {
	result := database.DB.Delete(&models.Article{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete article: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return scheduling.ErrNotFound
	}
	return r.invalidate(ctx, id)
}

func (r *ArticleRepository) invalidate(ctx context.Context, id string) error {
	if err := r.cache.Delete(ctx, r.getArticleCacheKey(id)); err != nil {
		return fmt.Errorf("failed to delete article cache: %w", err)
	}
	return r.cache.DeleteAll(ctx, "articles_cache*")
}

func (r *ArticleRepository) getArticleCacheKey(id string) string {
	return fmt.Sprintf("article_cache:%s", id)
}
