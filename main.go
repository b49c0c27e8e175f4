package main

import (
	"log"
	"os"

	"github.com/JLG-co/Karate-Manager-SQLite/app/config"
	"github.com/JLG-co/Karate-Manager-SQLite/app/database"
	"github.com/JLG-co/Karate-Manager-SQLite/app/routes/agecategories"
	"github.com/JLG-co/Karate-Manager-SQLite/app/routes/athletes"
	"github.com/JLG-co/Karate-Manager-SQLite/app/routes/attendance"
	"github.com/JLG-co/Karate-Manager-SQLite/app/routes/auth"
	"github.com/JLG-co/Karate-Manager-SQLite/app/routes/belts"
	"github.com/JLG-co/Karate-Manager-SQLite/app/routes/coaches"
	"github.com/JLG-co/Karate-Manager-SQLite/app/routes/competitions"
	"github.com/JLG-co/Karate-Manager-SQLite/app/routes/dashboard"
	"github.com/JLG-co/Karate-Manager-SQLite/app/routes/payments"
	"github.com/JLG-co/Karate-Manager-SQLite/app/routes/reports"
	"github.com/JLG-co/Karate-Manager-SQLite/app/routes/settings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

// apiErrorHandler renders every error as a JSON body.
func apiErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
		"code":    code,
	})
}

func main() {
	// Optional .env for local development
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	// Initialize database
	config.InitDB()
	defer config.GetDB().Close()

	if err := database.CreateTables(config.GetDB()); err != nil {
		log.Fatal("Failed to create tables:", err)
	}
	if err := database.SeedDefaults(config.GetDB()); err != nil {
		log.Fatal("Failed to seed defaults:", err)
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Galia Club Karate",
		ErrorHandler: apiErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Routes
	auth.SetupAuthRoutes(app)
	dashboard.SetupDashboardRoutes(app)
	athletes.SetupAthletesRoutes(app)
	coaches.SetupCoachesRoutes(app)
	agecategories.SetupAgeCategoriesRoutes(app)
	belts.SetupBeltsRoutes(app)
	payments.SetupPaymentsRoutes(app)
	attendance.SetupAttendanceRoutes(app)
	competitions.SetupCompetitionsRoutes(app)
	reports.SetupReportsRoutes(app)
	settings.SetupSettingsRoutes(app)

	// Catch-all 404 (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Not found")
	})

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("Server starting on :" + port)
	log.Fatal(app.Listen(":" + port))
}
