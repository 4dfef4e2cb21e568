package services

import (
	"context"
	"fmt"

	"OncoCare/llm"
	"OncoCare/models"
	"OncoCare/repositories"
)

// SessionMessageCap bounds how many turns one chat session may hold.
const SessionMessageCap = 60

type ChatService struct {
	repository *repositories.ChatRepository
	client     llm.Client
}

func NewChatService(repository *repositories.ChatRepository, client llm.Client) *ChatService {
	return &ChatService{repository: repository, client: client}
}

// StartSession opens a session and seeds it with the assistant's greeting.
func (s *ChatService) StartSession(ctx context.Context, ownerID string) (*models.ChatSession, *models.ChatMessage, error) {
	session := &models.ChatSession{OwnerID: ownerID}
	if err := s.repository.CreateSession(ctx, session); err != nil {
		return nil, nil, err
	}

	greeting := &models.ChatMessage{
		SessionID: session.ID,
		Role:      "assistant",
		Content:   llm.FirstMessage,
	}
	if err := s.repository.AppendMessage(ctx, greeting); err != nil {
		return nil, nil, err
	}
	return session, greeting, nil
}

// Reply appends a user turn, asks the provider for a response with the full
// session history behind the persona prompt, and persists both turns. On a
// provider failure the user's turn is kept and a canned fallback is returned.
func (s *ChatService) Reply(ctx context.Context, ownerID, sessionID, content string) (string, bool, error) {
	session, err := s.repository.GetSession(ctx, ownerID, sessionID)
	if err != nil {
		return "", false, err
	}
	if session.Closed {
		return llm.CapMessage, true, nil
	}

	count, err := s.repository.CountMessages(ctx, sessionID)
	if err != nil {
		return "", false, err
	}
	if count >= SessionMessageCap {
		if err := s.repository.CloseSession(ctx, ownerID, sessionID); err != nil {
			return "", false, err
		}
		return llm.CapMessage, true, nil
	}

	userTurn := &models.ChatMessage{SessionID: sessionID, Role: "user", Content: content}
	if err := s.repository.AppendMessage(ctx, userTurn); err != nil {
		return "", false, err
	}

	history, err := s.repository.GetMessages(ctx, sessionID)
	if err != nil {
		return "", false, err
	}

	messages := make([]llm.Message, 0, len(history)+1)
	messages = append(messages, llm.Message{Role: "system", Content: llm.PsychologistPrompt})
	for _, m := range history {
		messages = append(messages, llm.Message{Role: m.Role, Content: m.Content})
	}

	reply, err := s.client.Chat(ctx, messages)
	if err != nil {
		return llm.FallbackReply, false, fmt.Errorf("chat provider call failed: %w", err)
	}

	assistantTurn := &models.ChatMessage{SessionID: sessionID, Role: "assistant", Content: reply}
	if err := s.repository.AppendMessage(ctx, assistantTurn); err != nil {
		return "", false, err
	}
	return reply, false, nil
}

// History returns a session's messages in order, owner-scoped.
func (s *ChatService) History(ctx context.Context, ownerID, sessionID string) ([]models.ChatMessage, error) {
	if _, err := s.repository.GetSession(ctx, ownerID, sessionID); err != nil {
		return nil, err
	}
	return s.repository.GetMessages(ctx, sessionID)
}
