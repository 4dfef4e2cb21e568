package controllers

import (
	"OncoCare/handlers"

	"github.com/gin-gonic/gin"
)

// SetupCareRoutes registers the user, appointment, and screening routes.
// Appointments and screenings are scoped to their owning user.
func SetupCareRoutes(router *gin.Engine, userHandler *handlers.UserHandler, appointmentHandler *handlers.AppointmentHandler, screeningHandler *handlers.ScreeningHandler) {
	router.GET("/users", userHandler.ListUsers)
	router.GET("/users/:user_id", userHandler.GetUser)
	router.PUT("/users/:user_id", userHandler.UpdateUser)
	router.DELETE("/users/:user_id", userHandler.DeleteUser)

	router.POST("/users/:user_id/appointments", appointmentHandler.CreateAppointment)
	router.GET("/users/:user_id/appointments", appointmentHandler.GetAllAppointments)
	router.GET("/users/:user_id/appointments/:appointment_id", appointmentHandler.GetAppointmentByID)
	router.PUT("/users/:user_id/appointments/:appointment_id", appointmentHandler.UpdateAppointment)
	router.POST("/users/:user_id/appointments/:appointment_id/status", appointmentHandler.TransitionAppointment)
	router.GET("/users/:user_id/appointments/:appointment_id/reminders", appointmentHandler.GetAppointmentReminders)
	router.POST("/users/:user_id/appointments/:appointment_id/reminders/send", appointmentHandler.SendAppointmentReminder)
	router.DELETE("/users/:user_id/appointments/:appointment_id", appointmentHandler.DeleteAppointment)

	router.POST("/users/:user_id/screenings", screeningHandler.CreateScreening)
	router.GET("/users/:user_id/screenings", screeningHandler.GetAllScreenings)
	router.GET("/users/:user_id/screenings/due", screeningHandler.GetDueScreenings)
	router.GET("/users/:user_id/screenings/:screening_id", screeningHandler.GetScreeningByID)
	router.PUT("/users/:user_id/screenings/:screening_id", screeningHandler.UpdateScreening)
	router.POST("/users/:user_id/screenings/:screening_id/complete", screeningHandler.CompleteScreening)
	router.DELETE("/users/:user_id/screenings/:screening_id", screeningHandler.DeleteScreening)
}
