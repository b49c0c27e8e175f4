package attendance

import (
	"log"
	"time"

	"github.com/JLG-co/Karate-Manager-SQLite/app/config"
	"github.com/JLG-co/Karate-Manager-SQLite/app/database"
	"github.com/JLG-co/Karate-Manager-SQLite/app/models"
	"github.com/gofiber/fiber/v2"
)

// GetDayViewAPI returns the merged roster for a day plus the derived counts.
// Counts always cover the whole roster; the optional search only narrows the
// returned rows.
func GetDayViewAPI(c *fiber.Ctx) error {
	dateStr := c.Params("date")
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid date format. Use YYYY-MM-DD"})
	}

	items, err := database.GetDayView(config.GetDB(), date)
	if err != nil {
		log.Printf("Failed to load day view for %s: %v", dateStr, err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load attendance"})
	}

	summary := database.SummarizeDay(items)
	filtered := database.FilterDayView(items, c.Query("search"))

	return c.JSON(fiber.Map{
		"date":       dateStr,
		"attendance": filtered,
		"summary":    summary,
	})
}

// MarkAttendanceAPI upserts one athlete's record for a day. Status "None"
// un-marks: it clears an existing record's status, and is a no-op when no
// record exists. Repeating a call changes nothing.
func MarkAttendanceAPI(c *fiber.Ctx) error {
	type MarkRequest struct {
		AthleteID string `json:"athlete_id"`
		Date      string `json:"date"`
		Status    string `json:"status"`
	}

	var req MarkRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.AthleteID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Athlete ID is required"})
	}

	status := models.AttendanceStatus(req.Status)
	switch status {
	case models.StatusPresent, models.StatusLate, models.StatusAbsent, models.StatusNone:
	default:
		return c.Status(400).JSON(fiber.Map{"error": "Invalid status"})
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid date format. Use YYYY-MM-DD"})
	}

	if err := database.MarkAttendance(config.GetDB(), req.AthleteID, date, status, time.Now()); err != nil {
		log.Printf("Error marking attendance for %s: %v", req.AthleteID, err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to mark attendance"})
	}

	return c.JSON(fiber.Map{"message": "Attendance updated"})
}
