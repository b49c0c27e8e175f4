package coaches

import (
	"github.com/JLG-co/Karate-Manager-SQLite/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

func SetupCoachesRoutes(app *fiber.App) {
	api := app.Group("/api/coaches")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetCoachesAPI)
	api.Post("/", CreateCoachAPI)
	api.Put("/:id", UpdateCoachAPI)
	api.Delete("/:id", DeleteCoachAPI)
}
