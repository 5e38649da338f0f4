package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/medibook/medibook-backend/controllers"
)

// SetupNotificationRoutes configures the email dispatch and storage routes.
func SetupNotificationRoutes(app *fiber.App) {
	app.Post("/notifications/appointment-email", controllers.SendAppointmentEmail)
	app.Post("/storage/ensure-buckets", controllers.EnsureStorageBuckets)
}
