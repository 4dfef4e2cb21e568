package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"OncoCare/scheduling"
	"OncoCare/services"
)

type ChatHandler struct {
	service *services.ChatService
}

func NewChatHandler(service *services.ChatService) *ChatHandler {
	return &ChatHandler{service: service}
}

// StartChatSession opens a new support session and returns the assistant's
// opening message.
func (h *ChatHandler) StartChatSession(c *gin.Context) {
	ownerID := c.Param("user_id")
	session, greeting, err := h.service.StartSession(c, ownerID)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(201, gin.H{
		"session": session,
		"message": greeting,
	})
}

// PostChatMessage appends a user turn and returns the assistant's reply. When
// the session has reached its message cap the reply is a closing note and the
// capped flag is set.
func (h *ChatHandler) PostChatMessage(c *gin.Context) {
	var body struct {
		Content string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	ownerID := c.Param("user_id")
	sessionID := c.Param("session_id")
	reply, capped, err := h.service.Reply(c, ownerID, sessionID, body.Content)
	if err != nil {
		if errors.Is(err, scheduling.ErrNotFound) {
			c.JSON(404, gin.H{"error": "Session not found"})
			return
		}
		// The provider call failing still yields a safe fallback reply.
		if reply == "" {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
	}
	c.JSON(200, gin.H{
		"reply":  reply,
		"capped": capped,
	})
}

// GetChatHistory returns every stored turn of the session in order.
func (h *ChatHandler) GetChatHistory(c *gin.Context) {
	ownerID := c.Param("user_id")
	sessionID := c.Param("session_id")
	messages, err := h.service.History(c, ownerID, sessionID)
	if err != nil {
		if errors.Is(err, scheduling.ErrNotFound) {
			c.JSON(404, gin.H{"error": "Session not found"})
			return
		}
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, gin.H{"messages": messages})
}
