package belts

import (
	"log"
	"time"

	"github.com/JLG-co/Karate-Manager-SQLite/app/config"
	"github.com/JLG-co/Karate-Manager-SQLite/app/database"
	"github.com/JLG-co/Karate-Manager-SQLite/app/models"
	"github.com/gofiber/fiber/v2"
)

func GetBeltRanksAPI(c *fiber.Ctx) error {
	belts, err := database.GetBeltRanks(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch belt ranks"})
	}
	return c.JSON(fiber.Map{
		"belts": belts,
		"count": len(belts),
	})
}

func CreateBeltRankAPI(c *fiber.Ctx) error {
	var belt models.BeltRank
	if err := c.BodyParser(&belt); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if belt.Name == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Belt name is required"})
	}

	belt.ID = ""
	if err := database.CreateBeltRank(config.GetDB(), &belt); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create belt rank"})
	}
	return c.Status(201).JSON(belt)
}

func UpdateBeltRankAPI(c *fiber.Ctx) error {
	var belt models.BeltRank
	if err := c.BodyParser(&belt); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	belt.ID = c.Params("id")
	if err := database.UpdateBeltRank(config.GetDB(), &belt); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update belt rank"})
	}
	return c.JSON(belt)
}

func DeleteBeltRankAPI(c *fiber.Ctx) error {
	if err := database.DeleteBeltRank(config.GetDB(), c.Params("id")); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete belt rank"})
	}
	return c.JSON(fiber.Map{"message": "Belt rank deleted"})
}

// RecordPromotionAPI appends to the promotion ledger and moves the athlete
// to the new rank. Missing athlete/belt ids no-op with a 200, matching the
// ledger's silent-skip write policy.
func RecordPromotionAPI(c *fiber.Ctx) error {
	type PromotionRequest struct {
		AthleteID string `json:"athlete_id"`
		ToBeltID  string `json:"to_belt_id"`
		Date      string `json:"date"`
		Examiner  string `json:"examiner"`
		Notes     string `json:"notes"`
	}

	var req PromotionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	date := time.Now()
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid date format. Use YYYY-MM-DD"})
		}
		date = parsed
	}

	promotion, err := database.RecordPromotion(config.GetDB(), req.AthleteID, req.ToBeltID, date, req.Examiner, req.Notes)
	if err != nil {
		log.Printf("Failed to record promotion: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to record promotion"})
	}
	if promotion == nil {
		return c.JSON(fiber.Map{"message": "Promotion skipped: athlete and belt are required"})
	}
	return c.Status(201).JSON(promotion)
}

func GetPromotionHistoryAPI(c *fiber.Ctx) error {
	promotions, err := database.GetPromotionHistory(config.GetDB(), c.Params("athleteId"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch promotion history"})
	}
	return c.JSON(fiber.Map{
		"promotions": promotions,
		"count":      len(promotions),
	})
}

// DeletePromotionAPI removes a ledger row. The athlete's current rank is
// intentionally not rolled back.
func DeletePromotionAPI(c *fiber.Ctx) error {
	if err := database.DeletePromotion(config.GetDB(), c.Params("id")); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete promotion"})
	}
	return c.JSON(fiber.Map{"message": "Promotion deleted"})
}
