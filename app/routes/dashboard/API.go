package dashboard

import (
	"log"

	"github.com/JLG-co/Karate-Manager-SQLite/app/config"
	"github.com/JLG-co/Karate-Manager-SQLite/app/database"
	"github.com/gofiber/fiber/v2"
)

func GetDashboardStatsAPI(c *fiber.Ctx) error {
	stats, err := database.GetDashboardStats(config.GetDB())
	if err != nil {
		log.Printf("Error loading dashboard stats: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load dashboard stats"})
	}
	return c.JSON(stats)
}
