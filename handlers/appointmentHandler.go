package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"OncoCare/models"
	"OncoCare/scheduling"
	"OncoCare/services"
)

type AppointmentHandler struct {
	service *services.AppointmentService
}

func NewAppointmentHandler(service *services.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{service: service}
}

// parsePageParams reads the page and page_size query parameters, falling back
// to the first page of 20 items when they are absent.
func parsePageParams(c *gin.Context) (int, int, error) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		return 0, 0, scheduling.ErrInvalidPagination
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if err != nil {
		return 0, 0, scheduling.ErrInvalidPagination
	}
	return page, pageSize, nil
}

func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var appointment models.Appointment
	if err := c.ShouldBindJSON(&appointment); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	appointment.OwnerID = c.Param("user_id")
	if err := h.service.Create(c, &appointment); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	c.JSON(201, appointment)
}

func (h *AppointmentHandler) GetAppointmentByID(c *gin.Context) {
	ownerID := c.Param("user_id")
	id := c.Param("appointment_id")
	appointment, err := h.service.GetByID(c, ownerID, id)
	if err != nil {
		if errors.Is(err, scheduling.ErrNotFound) {
			c.JSON(404, gin.H{"error": "Appointment not found"})
			return
		}
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, appointment)
}

func (h *AppointmentHandler) GetAllAppointments(c *gin.Context) {
	page, pageSize, err := parsePageParams(c)
	if err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	filter := scheduling.Filter{
		Owner:    c.Param("user_id"),
		Status:   c.Query("status"),
		Category: c.Query("category"),
		DateFrom: c.Query("from"),
		DateTo:   c.Query("to"),
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

func (h *AppointmentHandler) UpdateAppointment(c *gin.Context) {
	var appointment models.Appointment
	if err := c.ShouldBindJSON(&appointment); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	appointment.OwnerID = c.Param("user_id")
	appointment.ID = c.Param("appointment_id")
	if err := h.service.UpdateDetails(c, &appointment); err != nil {
		if errors.Is(err, scheduling.ErrNotFound) {
			c.JSON(404, gin.H{"error": "Appointment not found"})
			return
		}
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, appointment)
}

// TransitionAppointment moves an appointment to a new lifecycle status. A
// reschedule carries the replacement date and time in the same body.
func (h *AppointmentHandler) TransitionAppointment(c *gin.Context) {
	var body struct {
		Status string `json:"status" binding:"required"`
		Date   string `json:"date"`
		Time   string `json:"time"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	ownerID := c.Param("user_id")
	id := c.Param("appointment_id")
	appointment, err := h.service.Transition(c, ownerID, id, body.Status, body.Date, body.Time)
	if err != nil {
		c.JSON(transitionErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, appointment)
}

// transitionErrorStatus maps a failed lifecycle change to its HTTP status.
// Rejected transitions and lost status races are conflicts, not bad requests.
func transitionErrorStatus(err error) int {
	var transitionErr *scheduling.InvalidTransitionError
	switch {
	case errors.As(err, &transitionErr):
		return 409
	case errors.Is(err, scheduling.ErrStatusConflict):
		return 409
	case errors.Is(err, scheduling.ErrNotFound):
		return 404
	default:
		return 400
	}
}

// GetAppointmentReminders returns the reminder instants derived from the
// appointment's lead times.
func (h *AppointmentHandler) GetAppointmentReminders(c *gin.Context) {
	ownerID := c.Param("user_id")
	id := c.Param("appointment_id")
	reminders, err := h.service.ReminderTimes(c, ownerID, id)
	if err != nil {
		if errors.Is(err, scheduling.ErrNotFound) {
			c.JSON(404, gin.H{"error": "Appointment not found"})
			return
		}
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, gin.H{"reminders": reminders})
}

// SendAppointmentReminder emails a reminder for the appointment to the given
// address.
func (h *AppointmentHandler) SendAppointmentReminder(c *gin.Context) {
	var body struct {
		Email string `json:"email" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	ownerID := c.Param("user_id")
	id := c.Param("appointment_id")
	if err := h.service.SendReminder(c, ownerID, id, body.Email); err != nil {
		if errors.Is(err, scheduling.ErrNotFound) {
			c.JSON(404, gin.H{"error": "Appointment not found"})
			return
		}
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.Status(200)
}

func (h *AppointmentHandler) DeleteAppointment(c *gin.Context) {
	ownerID := c.Param("user_id")
	id := c.Param("appointment_id")
	if err := h.service.Delete(c, ownerID, id); err != nil {
		if errors.Is(err, scheduling.ErrNotFound) {
			c.JSON(404, gin.H{"error": "Appointment not found"})
			return
		}
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(204, gin.H{"message": "Appointment deleted"})
}
