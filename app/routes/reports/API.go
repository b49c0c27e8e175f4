package reports

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/JLG-co/Karate-Manager-SQLite/app/config"
	"github.com/JLG-co/Karate-Manager-SQLite/app/database"
	"github.com/gofiber/fiber/v2"
)

func GetReportStatsAPI(c *fiber.Ctx) error {
	stats, err := database.GetReportStats(config.GetDB(), time.Now())
	if err != nil {
		log.Printf("Error loading report stats: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load report stats"})
	}
	return c.JSON(stats)
}

// ExportCSVAPI streams a report as CSV. The date range only constrains the
// Payments and Attendance reports; Athletes and Competitions exports always
// cover everything.
func ExportCSVAPI(c *fiber.Ctx) error {
	reportType := c.Query("type", "Athletes")
	startDate := c.Query("start_date")
	endDate := c.Query("end_date")

	db := config.GetDB()
	var rows [][]string

	switch reportType {
	case "Athletes":
		athletes, err := database.GetAthletes(db, database.AthleteFilters{})
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to load athletes"})
		}
		rows = AthleteReportRows(athletes)
	case "Payments":
		start, end, err := database.ReportRange(startDate, endDate)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid date range. Use YYYY-MM-DD"})
		}
		payments, err := database.GetPaymentsInRange(db, start, end)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to load payments"})
		}
		rows = PaymentReportRows(payments)
	case "Attendance":
		start, end, err := database.ReportRange(startDate, endDate)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid date range. Use YYYY-MM-DD"})
		}
		records, err := database.GetAttendanceInRange(db, start, end)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to load attendance"})
		}
		rows = AttendanceReportRows(records)
	case "Competitions":
		results, err := database.GetAllResults(db)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to load results"})
		}
		rows = CompetitionReportRows(results)
	default:
		return c.Status(400).JSON(fiber.Map{"error": "Unknown report type"})
	}

	data, err := EncodeCSV(rows)
	if err != nil {
		log.Printf("CSV generation error: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to generate CSV"})
	}

	filename := fmt.Sprintf("report_%s_%s.csv", strings.ToLower(reportType), time.Now().Format("20060102"))
	c.Set("Content-Type", "text/csv")
	c.Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	return c.Send(data)
}
