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

const ChatSessionCacheExpiry = time.Hour

type ChatRepository struct {
	cache *cache.Cache
}

func NewChatRepository(cache *cache.Cache) *ChatRepository {
	return &ChatRepository{cache: cache}
}

func (r *ChatRepository) CreateSession(ctx context.Context, session *models.ChatSession) error {
	if session.ID == "" {
		session.ID = uuid.New().String()
	}
	if err := database.DB.Create(session).Error; err != nil {
		return fmt.Errorf("failed to create chat session: %w", err)
	}
	return nil
}

func (r *ChatRepository) getSessionCacheKey(ownerID, id string) string {
	return fmt.Sprintf("chat_session_cache:%s_%s", ownerID, id)
}

func (r *ChatRepository) GetSession(ctx context.Context, ownerID, id string) (*models.ChatSession, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := r.getSessionCacheKey(ownerID, id)
	var cached models.ChatSession
	if err := r.cache.GetJSON(ctx, cacheKey, &cached); err == nil {
		return &cached, nil
	} else if !errors.Is(err, cache.ErrMiss) {
		log.Printf("Failed to get chat session from cache: %v", err)
	}

	var session models.ChatSession
	err := database.DB.First(&session, "id = ? AND owner_id = ?", id, ownerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, scheduling.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get chat session: %w", err)
	}

	if err := r.cache.SetJSON(ctx, cacheKey, &session, ChatSessionCacheExpiry); err != nil {
		log.Printf("Failed to cache chat session: %v", err)
	}
	return &session, nil
}

func (r *ChatRepository) CloseSession(ctx context.Context, ownerID, id string) error {
	result := database.DB.Model(&models.ChatSession{}).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Update("closed", true)
	if result.Error != nil {
		return fmt.Errorf("failed to close chat session: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return scheduling.ErrNotFound
	}
	if err := r.cache.Delete(ctx, r.getSessionCacheKey(ownerID, id)); err != nil {
		log.Printf("Failed to invalidate chat session cache: %v", err)
	}
	return nil
}

func (r *ChatRepository) AppendMessage(ctx context.Context, message *models.ChatMessage) error {
	if err := database.DB.Create(message).Error; err != nil {
		return fmt.Errorf("failed to append chat message: %w", err)
	}
	return nil
}

// GetMessages returns a session's messages in chronological order.
func (r *ChatRepository) GetMessages(ctx context.Context, sessionID string) ([]models.ChatMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var messages []models.ChatMessage
	err := database.DB.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("id ASC").
		Find(&messages).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get chat messages: %w", err)
	}
	return messages, nil
}

// CountMessages returns how many turns a session holds, for the session cap.
func (r *ChatRepository) CountMessages(ctx context.Context, sessionID string) (int64, error) {
	var count int64
	err := database.DB.Model(&models.ChatMessage{}).
		Where("session_id = ?", sessionID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count chat messages: %w", err)
	}
	return count, nil
}
