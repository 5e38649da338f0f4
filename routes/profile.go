package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/medibook/medibook-backend/controllers"
	"github.com/medibook/medibook-backend/middleware"
)

// SetupProfileRoutes configures the user profile routes.
func SetupProfileRoutes(app *fiber.App) {
	profile := app.Group("/profile", middleware.Protected())
	profile.Get("/", controllers.GetProfile)
	profile.Put("/", controllers.UpdateProfile)
	profile.Post("/avatar", controllers.UploadAvatar)
}
