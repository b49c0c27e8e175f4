package belts

import (
	"github.com/JLG-co/Karate-Manager-SQLite/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

func SetupBeltsRoutes(app *fiber.App) {
	api := app.Group("/api/belts")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetBeltRanksAPI)
	api.Post("/", CreateBeltRankAPI)
	api.Put("/:id", UpdateBeltRankAPI)
	api.Delete("/:id", DeleteBeltRankAPI)

	promotions := app.Group("/api/promotions")
	promotions.Use(auth.AuthMiddleware)

	promotions.Post("/", RecordPromotionAPI)
	promotions.Get("/athlete/:athleteId", GetPromotionHistoryAPI)
	promotions.Delete("/:id", DeletePromotionAPI)
}
