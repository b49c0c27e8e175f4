package coaches

import (
	"log"

	"github.com/JLG-co/Karate-Manager-SQLite/app/config"
	"github.com/JLG-co/Karate-Manager-SQLite/app/database"
	"github.com/JLG-co/Karate-Manager-SQLite/app/models"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

func GetCoachesAPI(c *fiber.Ctx) error {
	coaches, err := database.GetCoaches(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch coaches"})
	}
	return c.JSON(fiber.Map{
		"coaches": coaches,
		"count":   len(coaches),
	})
}

func CreateCoachAPI(c *fiber.Ctx) error {
	var coach models.Coach
	if err := c.BodyParser(&coach); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(&coach); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed: " + err.Error()})
	}

	coach.ID = ""
	if err := database.CreateCoach(config.GetDB(), &coach); err != nil {
		log.Printf("Failed to create coach: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create coach"})
	}
	return c.Status(201).JSON(coach)
}

func UpdateCoachAPI(c *fiber.Ctx) error {
	var coach models.Coach
	if err := c.BodyParser(&coach); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	coach.ID = c.Params("id")
	if err := validate.Struct(&coach); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed: " + err.Error()})
	}

	if err := database.UpdateCoach(config.GetDB(), &coach); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update coach"})
	}
	return c.JSON(coach)
}

func DeleteCoachAPI(c *fiber.Ctx) error {
	if err := database.DeactivateCoach(config.GetDB(), c.Params("id")); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete coach"})
	}
	return c.JSON(fiber.Map{"message": "Coach deactivated"})
}
