package main

import (
	"log"

	"ivrtutor/config"
	"ivrtutor/database"
	lessonRoutes "ivrtutor/routers/lessonRoutes"
	progressRoutes "ivrtutor/routers/progressRoutes"
	sessionRoutes "ivrtutor/routers/sessionRoutes"
	settingsRoutes "ivrtutor/routers/settingsRoutes"
	smsRoutes "ivrtutor/routers/smsRoutes"
	studentRoutes "ivrtutor/routers/studentRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Health check endpoints
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": config.AppConfig.AppName + " API is running!",
			"version": config.AppConfig.AppVersion,
			"status":  "healthy",
		})
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		dbStatus := "connected"
		sqlDB, err := database.Database.Db.DB()
		if err != nil || sqlDB.Ping() != nil {
			dbStatus = "error"
		}
		return c.JSON(fiber.Map{
			"status":   "healthy",
			"database": dbStatus,
			"version":  config.AppConfig.AppVersion,
		})
	})

	studentRoutes.SetupStudentRoutes(app)
	lessonRoutes.SetupLessonRoutes(app)
	sessionRoutes.SetupSessionRoutes(app)
	progressRoutes.SetupProgressRoutes(app)
	smsRoutes.SetupSMSRoutes(app)
	settingsRoutes.SetupSettingsRoutes(app)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
