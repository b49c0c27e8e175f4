package agecategories

import (
	"github.com/JLG-co/Karate-Manager-SQLite/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

func SetupAgeCategoriesRoutes(app *fiber.App) {
	api := app.Group("/api/age-categories")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetAgeCategoriesAPI)
	api.Post("/", CreateAgeCategoryAPI)
	api.Put("/:id", UpdateAgeCategoryAPI)
	api.Delete("/:id", DeleteAgeCategoryAPI)
}
