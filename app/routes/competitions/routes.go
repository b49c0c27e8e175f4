package competitions

import (
	"github.com/JLG-co/Karate-Manager-SQLite/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

func SetupCompetitionsRoutes(app *fiber.App) {
	api := app.Group("/api/competitions")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetCompetitionsAPI)
	api.Post("/", CreateCompetitionAPI)
	api.Put("/:id", UpdateCompetitionAPI)
	api.Delete("/:id", DeleteCompetitionAPI)

	api.Get("/:id/results", GetResultsAPI)
	api.Post("/:id/results", AddResultAPI)
	api.Get("/:id/results/pdf", GetResultsPDFAPI)
	api.Put("/results/:resultId", UpdateResultStatusAPI)
	api.Delete("/results/:resultId", DeleteResultAPI)
}
