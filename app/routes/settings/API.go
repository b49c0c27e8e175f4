package settings

import (
	"io"
	"log"
	"strconv"
	"time"

	"github.com/JLG-co/Karate-Manager-SQLite/app/config"
	"github.com/JLG-co/Karate-Manager-SQLite/app/database"
	"github.com/JLG-co/Karate-Manager-SQLite/app/models"
	"github.com/JLG-co/Karate-Manager-SQLite/app/services"
	"github.com/gofiber/fiber/v2"
)

// GetSettingsAPI returns the fee settings as a flat key/value map.
func GetSettingsAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	return c.JSON(fiber.Map{
		models.SettingMonthlyFee:    database.GetSettingValue(db, models.SettingMonthlyFee, "500"),
		models.SettingYearlyLicense: database.GetSettingValue(db, models.SettingYearlyLicense, "300"),
	})
}

type feesRequest struct {
	MonthlyFee    string `json:"monthly_fee"`
	YearlyLicense string `json:"yearly_license"`
}

// SaveSettingsAPI updates the fee settings. Values must parse as
// non-negative numbers; keys whose value is absent are left untouched.
func SaveSettingsAPI(c *fiber.Ctx) error {
	var req feesRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	db := config.GetDB()
	for key, value := range map[string]string{
		models.SettingMonthlyFee:    req.MonthlyFee,
		models.SettingYearlyLicense: req.YearlyLicense,
	} {
		if value == "" {
			continue
		}
		n, err := strconv.ParseFloat(value, 64)
		if err != nil || n < 0 {
			return c.Status(400).JSON(fiber.Map{"error": "Fee values must be non-negative numbers"})
		}
		if err := database.SetSetting(db, key, value); err != nil {
			log.Printf("Error saving setting %s: %v", key, err)
			return c.Status(500).JSON(fiber.Map{"error": "Failed to save settings"})
		}
	}
	return c.JSON(fiber.Map{"message": "Settings saved"})
}

// BackupAPI streams a zip archive of the database file. Only the SQLite
// driver keeps the club in a single file, so the endpoint refuses to run
// against PostgreSQL.
func BackupAPI(c *fiber.Ctx) error {
	if config.GetDriver() != "sqlite3" {
		return c.Status(400).JSON(fiber.Map{"error": "Backup is only available with the SQLite driver"})
	}

	archive, err := services.CreateBackup(config.GetDBPath())
	if err != nil {
		log.Printf("Backup error: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create backup"})
	}

	filename := "galia_backup_" + time.Now().Format("20060102_150405") + ".zip"
	c.Set("Content-Type", "application/zip")
	c.Set("Content-Disposition", "attachment; filename="+filename)
	return c.Send(archive)
}

// RestoreAPI replaces the database file with an uploaded backup archive and
// reopens the connection. The archive is validated before the live file is
// touched.
func RestoreAPI(c *fiber.Ctx) error {
	if config.GetDriver() != "sqlite3" {
		return c.Status(400).JSON(fiber.Map{"error": "Restore is only available with the SQLite driver"})
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Missing backup file"})
	}
	f, err := fileHeader.Open()
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Cannot read backup file"})
	}
	defer f.Close()
	archive, err := io.ReadAll(f)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Cannot read backup file"})
	}

	// Close the handle before overwriting the file, then reconnect.
	dbPath := config.GetDBPath()
	if err := config.GetDB().Close(); err != nil {
		log.Printf("Error closing database before restore: %v", err)
	}
	if err := services.RestoreBackup(dbPath, archive); err != nil {
		config.InitDB()
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	config.InitDB()

	return c.JSON(fiber.Map{"message": "Database restored"})
}

// GetIDCardAPI renders a single athlete's ID card PDF.
func GetIDCardAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	athlete, err := database.GetAthleteByID(db, c.Params("athleteId"))
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Athlete not found"})
	}

	belt := "Unranked"
	if athlete.CurrentBeltRankID != nil {
		names, err := database.GetBeltNameMap(db)
		if err == nil {
			if name, ok := names[*athlete.CurrentBeltRankID]; ok {
				belt = name
			}
		}
	}

	pdf, err := services.GenerateIDCard(athlete, belt)
	if err != nil {
		log.Printf("ID card error for athlete %s: %v", athlete.ID, err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to generate ID card"})
	}

	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", "attachment; filename=id_card_"+athlete.ID+".pdf")
	return c.Send(pdf)
}

// GetAllIDCardsAPI renders ID cards for every active athlete as a batch of
// A4 sheets.
func GetAllIDCardsAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	athletes, err := database.GetAthletes(db, database.AthleteFilters{})
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch athletes"})
	}
	names, err := database.GetBeltNameMap(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch belt ranks"})
	}

	pdf, err := services.GenerateAllIDCards(athletes, names)
	if err != nil {
		log.Printf("Batch ID card error: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to generate ID cards"})
	}

	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", "attachment; filename=id_cards_all.pdf")
	return c.Send(pdf)
}
