package dashboard

import (
	"github.com/JLG-co/Karate-Manager-SQLite/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

func SetupDashboardRoutes(app *fiber.App) {
	api := app.Group("/api/dashboard", auth.AuthMiddleware)

	api.Get("/stats", GetDashboardStatsAPI)
}
