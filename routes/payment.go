package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/medibook/medibook-backend/controllers"
	"github.com/medibook/medibook-backend/middleware"
)

// SetupPaymentRoutes configures the payment processing routes.
func SetupPaymentRoutes(app *fiber.App) {
	payment := app.Group("/payments", middleware.Protected())
	payment.Post("/process", controllers.ProcessPayment)
	payment.Get("/history", controllers.GetPaymentHistory)
}
