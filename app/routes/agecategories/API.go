package agecategories

import (
	"github.com/JLG-co/Karate-Manager-SQLite/app/config"
	"github.com/JLG-co/Karate-Manager-SQLite/app/database"
	"github.com/JLG-co/Karate-Manager-SQLite/app/models"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

func GetAgeCategoriesAPI(c *fiber.Ctx) error {
	categories, err := database.GetAgeCategories(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch age categories"})
	}
	return c.JSON(fiber.Map{
		"categories": categories,
		"count":      len(categories),
	})
}

func CreateAgeCategoryAPI(c *fiber.Ctx) error {
	var category models.AgeCategory
	if err := c.BodyParser(&category); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(&category); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed: " + err.Error()})
	}

	category.ID = ""
	if err := database.CreateAgeCategory(config.GetDB(), &category); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create age category"})
	}
	return c.Status(201).JSON(category)
}

func UpdateAgeCategoryAPI(c *fiber.Ctx) error {
	var category models.AgeCategory
	if err := c.BodyParser(&category); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	category.ID = c.Params("id")
	if err := validate.Struct(&category); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed: " + err.Error()})
	}

	if err := database.UpdateAgeCategory(config.GetDB(), &category); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update age category"})
	}
	return c.JSON(category)
}

func DeleteAgeCategoryAPI(c *fiber.Ctx) error {
	if err := database.DeleteAgeCategory(config.GetDB(), c.Params("id")); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete age category"})
	}
	return c.JSON(fiber.Map{"message": "Age category deleted"})
}
