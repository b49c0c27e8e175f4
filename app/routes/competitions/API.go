package competitions

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/JLG-co/Karate-Manager-SQLite/app/config"
	"github.com/JLG-co/Karate-Manager-SQLite/app/database"
	"github.com/JLG-co/Karate-Manager-SQLite/app/models"
	"github.com/JLG-co/Karate-Manager-SQLite/app/services"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

func GetCompetitionsAPI(c *fiber.Ctx) error {
	competitions, err := database.GetCompetitions(config.GetDB(), c.Query("search"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch competitions"})
	}
	return c.JSON(fiber.Map{
		"competitions": competitions,
		"count":        len(competitions),
	})
}

type competitionRequest struct {
	Name        string  `json:"name" validate:"required"`
	Date        string  `json:"date" validate:"required"`
	Location    string  `json:"location"`
	Description *string `json:"description"`
}

func CreateCompetitionAPI(c *fiber.Ctx) error {
	var req competitionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed: " + err.Error()})
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid date format. Use YYYY-MM-DD"})
	}

	competition := &models.Competition{
		Name:        req.Name,
		Date:        date,
		Location:    req.Location,
		Description: req.Description,
	}
	if err := database.CreateCompetition(config.GetDB(), competition); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create competition"})
	}
	return c.Status(201).JSON(competition)
}

func UpdateCompetitionAPI(c *fiber.Ctx) error {
	var req competitionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed: " + err.Error()})
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid date format. Use YYYY-MM-DD"})
	}

	competition := &models.Competition{
		ID:          c.Params("id"),
		Name:        req.Name,
		Date:        date,
		Location:    req.Location,
		Description: req.Description,
	}
	if err := database.UpdateCompetition(config.GetDB(), competition); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update competition"})
	}
	return c.JSON(competition)
}

// DeleteCompetitionAPI cascades to result rows inside one transaction.
func DeleteCompetitionAPI(c *fiber.Ctx) error {
	if err := database.DeleteCompetition(config.GetDB(), c.Params("id")); err != nil {
		log.Printf("Failed to delete competition %s: %v", c.Params("id"), err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete competition"})
	}
	return c.JSON(fiber.Map{"message": "Competition deleted"})
}

func GetResultsAPI(c *fiber.Ctx) error {
	results, err := database.GetCompetitionResults(config.GetDB(), c.Params("id"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch results"})
	}
	return c.JSON(fiber.Map{
		"results": results,
		"count":   len(results),
	})
}

// AddResultAPI registers an athlete in a category. Re-adding the same
// (athlete, category) updates the stored result instead of duplicating the
// entry.
func AddResultAPI(c *fiber.Ctx) error {
	type ResultRequest struct {
		AthleteID string `json:"athlete_id"`
		Category  string `json:"category"`
		Result    string `json:"result"`
	}

	var req ResultRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.AthleteID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Athlete ID is required"})
	}

	err := database.UpsertCompetitionResult(config.GetDB(), c.Params("id"), req.AthleteID,
		req.Category, models.ResultStatus(req.Result))
	if err != nil {
		log.Printf("Error adding result: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to add result"})
	}
	return c.Status(201).JSON(fiber.Map{"message": "Result recorded"})
}

func UpdateResultStatusAPI(c *fiber.Ctx) error {
	type StatusRequest struct {
		Result string `json:"result"`
	}

	var req StatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	err := database.UpdateResultStatus(config.GetDB(), c.Params("resultId"), models.ResultStatus(req.Result))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update result"})
	}
	return c.JSON(fiber.Map{"message": "Result updated"})
}

func DeleteResultAPI(c *fiber.Ctx) error {
	if err := database.DeleteResult(config.GetDB(), c.Params("resultId")); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete result"})
	}
	return c.JSON(fiber.Map{"message": "Result deleted"})
}

// GetResultsPDFAPI renders the competition's result sheet.
func GetResultsPDFAPI(c *fiber.Ctx) error {
	competition, err := database.GetCompetitionByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Competition not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch competition"})
	}
	results, err := database.GetCompetitionResults(config.GetDB(), competition.ID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch results"})
	}

	pdf, err := services.GenerateCompetitionResultsPDF(competition, results)
	if err != nil {
		log.Printf("PDF generation error for competition %s: %v", competition.ID, err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to generate PDF"})
	}

	filename := fmt.Sprintf("competition_%s_results.pdf", competition.ID)
	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	return c.Send(pdf)
}
