package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/medibook/medibook-backend/controllers"
	"github.com/medibook/medibook-backend/middleware"
)

// SetupAppointmentRoutes configures all appointment related routes
func SetupAppointmentRoutes(app *fiber.App) {
	appointment := app.Group("/appointments", middleware.Protected())
	appointment.Get("/", controllers.GetMyAppointments)
	appointment.Get("/availability", controllers.GetAvailability)
	appointment.Post("/", controllers.CreateAppointment)
	appointment.Patch("/:id/reschedule", controllers.RescheduleAppointment)
	appointment.Patch("/:id/cancel", controllers.CancelAppointment)
}
