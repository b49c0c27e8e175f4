package athletes

import (
	"github.com/JLG-co/Karate-Manager-SQLite/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

func SetupAthletesRoutes(app *fiber.App) {
	api := app.Group("/api/athletes")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetAthletesAPI)
	api.Post("/", CreateAthleteAPI)
	api.Post("/import", ImportAthletesCSVAPI)
	api.Get("/:id", GetAthleteByIDAPI)
	api.Put("/:id", UpdateAthleteAPI)
	api.Delete("/:id", DeleteAthleteAPI)
}
