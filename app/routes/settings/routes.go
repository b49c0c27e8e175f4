package settings

import (
	"github.com/JLG-co/Karate-Manager-SQLite/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

func SetupSettingsRoutes(app *fiber.App) {
	api := app.Group("/api/settings", auth.AuthMiddleware)

	api.Get("/", GetSettingsAPI)
	api.Put("/", SaveSettingsAPI)
	api.Get("/backup", BackupAPI)
	api.Post("/restore", RestoreAPI)
	api.Get("/idcard/:athleteId", GetIDCardAPI)
	api.Get("/idcards", GetAllIDCardsAPI)
}
