package payments

import (
	"github.com/JLG-co/Karate-Manager-SQLite/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

func SetupPaymentsRoutes(app *fiber.App) {
	api := app.Group("/api/payments")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetPaymentsAPI)
	api.Post("/", CreatePaymentAPI)
	api.Put("/:id", UpdatePaymentAPI)
	api.Delete("/:id", DeletePaymentAPI)
	api.Get("/:id/receipt", GetReceiptAPI)
}
