package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/medibook/medibook-backend/controllers"
)

// SetupCatalogRoutes configures the public exam catalog routes.
func SetupCatalogRoutes(app *fiber.App) {
	catalog := app.Group("/catalog")
	catalog.Get("/exams", controllers.SearchExams)
	catalog.Get("/exams/:id", controllers.GetLaboratoryExam)
	catalog.Get("/cities", controllers.GetCities)

	app.Get("/i18n/:lang", controllers.GetTranslations)
}
