package athletes

import (
	"database/sql"
	"encoding/csv"
	"io"
	"log"

	"github.com/JLG-co/Karate-Manager-SQLite/app/config"
	"github.com/JLG-co/Karate-Manager-SQLite/app/database"
	"github.com/JLG-co/Karate-Manager-SQLite/app/models"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

func GetAthletesAPI(c *fiber.Ctx) error {
	filters := database.AthleteFilters{
		Search:        c.Query("search"),
		AgeCategoryID: c.Query("age_category_id"),
		BeltRankID:    c.Query("belt_rank_id"),
	}

	athletes, err := database.GetAthletes(config.GetDB(), filters)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch athletes"})
	}
	return c.JSON(fiber.Map{
		"athletes": athletes,
		"count":    len(athletes),
	})
}

func GetAthleteByIDAPI(c *fiber.Ctx) error {
	athlete, err := database.GetAthleteByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Athlete not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch athlete"})
	}
	return c.JSON(athlete)
}

func CreateAthleteAPI(c *fiber.Ctx) error {
	var athlete models.Athlete
	if err := c.BodyParser(&athlete); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(&athlete); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed: " + err.Error()})
	}

	athlete.ID = ""
	if err := database.CreateAthlete(config.GetDB(), &athlete); err != nil {
		log.Printf("Failed to create athlete: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create athlete"})
	}
	return c.Status(201).JSON(athlete)
}

func UpdateAthleteAPI(c *fiber.Ctx) error {
	var athlete models.Athlete
	if err := c.BodyParser(&athlete); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	athlete.ID = c.Params("id")
	if err := validate.Struct(&athlete); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed: " + err.Error()})
	}

	if err := database.UpdateAthlete(config.GetDB(), &athlete); err != nil {
		log.Printf("Failed to update athlete %s: %v", athlete.ID, err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update athlete"})
	}
	return c.JSON(athlete)
}

// DeleteAthleteAPI deactivates; athlete rows are never hard-deleted.
func DeleteAthleteAPI(c *fiber.Ctx) error {
	if err := database.DeactivateAthlete(config.GetDB(), c.Params("id")); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete athlete"})
	}
	return c.JSON(fiber.Map{"message": "Athlete deactivated"})
}

// ImportAthletesCSVAPI bulk-creates athletes from an uploaded CSV with a
// full_name,date_of_birth,gender,phone,guardian_name,guardian_phone header.
// Rows without a full_name are skipped.
func ImportAthletesCSVAPI(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "CSV file is required"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Failed to read uploaded file"})
	}
	defer file.Close()

	reader := csv.NewReader(file)
	header, err := reader.Read()
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid CSV file"})
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}

	field := func(record []string, name string) string {
		if i, ok := col[name]; ok && i < len(record) {
			return record[i]
		}
		return ""
	}

	added := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Error importing CSV: " + err.Error()})
		}
		fullName := field(record, "full_name")
		if fullName == "" {
			continue
		}

		athlete := &models.Athlete{
			FullName:    fullName,
			DateOfBirth: field(record, "date_of_birth"),
			Gender:      models.Gender(field(record, "gender")),
		}
		if athlete.Gender == "" {
			athlete.Gender = models.Male
		}
		if phone := field(record, "phone"); phone != "" {
			athlete.Phone = &phone
		}
		if guardian := field(record, "guardian_name"); guardian != "" {
			athlete.GuardianName = &guardian
		}
		if gphone := field(record, "guardian_phone"); gphone != "" {
			athlete.GuardianPhone = &gphone
		}

		if err := database.CreateAthlete(config.GetDB(), athlete); err != nil {
			log.Printf("Failed to import athlete %q: %v", fullName, err)
			return c.Status(500).JSON(fiber.Map{"error": "Error importing CSV: " + err.Error()})
		}
		added++
	}

	return c.JSON(fiber.Map{"message": "Import complete", "imported": added})
}
