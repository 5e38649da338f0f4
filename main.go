package main

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/medibook/medibook-backend/cron"
	"github.com/medibook/medibook-backend/db"
	"github.com/medibook/medibook-backend/logger"
	"github.com/medibook/medibook-backend/redis"
	"github.com/medibook/medibook-backend/routes"
	"go.uber.org/zap"
)

func main() {
	logger.Init()
	defer logger.Sync()

	app := fiber.New()
	db.Migrate()
	db.Seed()

	if os.Getenv("REDIS_ADDR") != "" {
		redis.InitRedis()
		// Catalog reference data is reseeded at boot; the cached city list
		// may predate it.
		redis.Invalidate("catalog:cities")
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	routes.SetupAuthRoutes(app)
	routes.SetupCatalogRoutes(app)
	routes.SetupAppointmentRoutes(app)
	routes.SetupPaymentRoutes(app)
	routes.SetupProfileRoutes(app)
	routes.SetupNotificationRoutes(app)

	cron.StartCronJobs()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	if err := app.Listen(":" + port); err != nil {
		logger.Log.Fatal("server stopped", zap.Error(err))
	}
}
