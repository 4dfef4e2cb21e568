package handlers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"OncoCare/models"
	"OncoCare/scheduling"
	"OncoCare/services"
)

type ScreeningHandler struct {
	service *services.ScreeningService
}

func NewScreeningHandler(service *services.ScreeningService) *ScreeningHandler {
	return &ScreeningHandler{service: service}
}

func (h *ScreeningHandler) CreateScreening(c *gin.Context) {
	var screening models.Screening
	if err := c.ShouldBindJSON(&screening); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	screening.OwnerID = c.Param("user_id")
	if err := h.service.Create(c, &screening, time.Now()); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	c.JSON(201, screening)
}

func (h *ScreeningHandler) GetScreeningByID(c *gin.Context) {
	ownerID := c.Param("user_id")
	id := c.Param("screening_id")
	screening, err := h.service.GetByID(c, ownerID, id)
	if err != nil {
		if errors.Is(err, scheduling.ErrNotFound) {
			c.JSON(404, gin.H{"error": "Screening not found"})
			return
		}
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, screening)
}

func (h *ScreeningHandler) GetAllScreenings(c *gin.Context) {
	page, pageSize, err := parsePageParams(c)
	if err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	filter := scheduling.ScreeningFilter{
		Owner:   c.Param("user_id"),
		Type:    c.Query("type"),
		DueFrom: c.Query("due_from"),
		DueTo:   c.Query("due_to"),
	}

	result, err := h.service.List(c, filter, page, pageSize)
	if err != nil {
		if errors.Is(err, scheduling.ErrInvalidPagination) {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, result)
}

func (h *ScreeningHandler) UpdateScreening(c *gin.Context) {
	var screening models.Screening
	if err := c.ShouldBindJSON(&screening); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	screening.OwnerID = c.Param("user_id")
	screening.ID = c.Param("screening_id")
	if err := h.service.UpdateDetails(c, &screening, time.Now()); err != nil {
		if errors.Is(err, scheduling.ErrNotFound) {
			c.JSON(404, gin.H{"error": "Screening not found"})
			return
		}
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, screening)
}

// CompleteScreening records a completion, stores the outcome, and rolls the
// next due date forward from the completion date.
func (h *ScreeningHandler) CompleteScreening(c *gin.Context) {
	var body struct {
		CompletedAt string                 `json:"completed_at" binding:"required"`
		Result      models.ScreeningResult `json:"result"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	completedAt, err := time.Parse("2006-01-02", body.CompletedAt)
	if err != nil {
		c.JSON(400, gin.H{"error": "completed_at must be formatted as YYYY-MM-DD"})
		return
	}

	ownerID := c.Param("user_id")
	id := c.Param("screening_id")
	screening, err := h.service.RecordCompletion(c, ownerID, id, completedAt, time.Now(), body.Result)
	if err != nil {
		switch {
		case errors.Is(err, scheduling.ErrNotFound):
			c.JSON(404, gin.H{"error": "Screening not found"})
		case errors.Is(err, scheduling.ErrInvalidCompletionDate):
			c.JSON(400, gin.H{"error": err.Error()})
		default:
			c.JSON(400, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(200, screening)
}

// GetDueScreenings lists the user's screenings, each paired with its due
// classification. The reference date defaults to the server clock and can be
// overridden with the date query parameter.
func (h *ScreeningHandler) GetDueScreenings(c *gin.Context) {
	now := time.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(400, gin.H{"error": "date must be formatted as YYYY-MM-DD"})
			return
		}
		now = parsed
	}

	ownerID := c.Param("user_id")
	due, err := h.service.ListDue(c, ownerID, now)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, gin.H{"due": due})
}

func (h *ScreeningHandler) DeleteScreening(c *gin.Context) {
	ownerID := c.Param("user_id")
	id := c.Param("screening_id")
	if err := h.service.Delete(c, ownerID, id); err != nil {
		if errors.Is(err, scheduling.ErrNotFound) {
			c.JSON(404, gin.H{"error": "Screening not found"})
			return
		}
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(204, gin.H{"message": "Screening deleted"})
}
