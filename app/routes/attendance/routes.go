package attendance

import (
	"github.com/JLG-co/Karate-Manager-SQLite/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

func SetupAttendanceRoutes(app *fiber.App) {
	api := app.Group("/api/attendance")
	api.Use(auth.AuthMiddleware)

	api.Get("/day/:date", GetDayViewAPI)
	api.Post("/mark", MarkAttendanceAPI)
}
