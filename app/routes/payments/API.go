package payments

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
	"github.com/shopspring/decimal"
)

var validate = validator.New()

// GetPaymentsAPI returns the filtered ledger view plus the ledger's own
// aggregates. Aggregates are computed over the full ledger, not the
// filtered subset, so the headline numbers stay stable while filtering.
func GetPaymentsAPI(c *fiber.Ctx) error {
	views, err := database.GetPaymentsWithAthletes(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch payments"})
	}

	all := make([]*models.Payment, len(views))
	for i, v := range views {
		p := v.Payment
		all[i] = &p
	}
	aggregates := database.ComputePaymentAggregates(all, time.Now())

	filtered := FilterPayments(views, c.Query("search"), c.Query("status"), c.Query("type"))

	return c.JSON(fiber.Map{
		"payments":   filtered,
		"count":      len(filtered),
		"aggregates": aggregates,
	})
}

type paymentRequest struct {
	AthleteID    string  `json:"athlete_id" validate:"required"`
	Amount       string  `json:"amount" validate:"required"`
	PaymentType  string  `json:"payment_type" validate:"required"`
	PaymentDate  string  `json:"payment_date"`
	MonthCovered *int    `json:"month_covered" validate:"omitempty,min=1,max=12"`
	YearCovered  *int    `json:"year_covered"`
	Status       string  `json:"status" validate:"required,oneof=Paid Unpaid Partial Overdue"`
	Notes        *string `json:"notes"`
}

func (r *paymentRequest) toPayment(id string) (*models.Payment, error) {
	amount, err := decimal.NewFromString(r.Amount)
	if err != nil {
		return nil, fmt.Errorf("invalid amount %q", r.Amount)
	}
	if amount.IsNegative() {
		return nil, fmt.Errorf("amount must not be negative")
	}

	p := &models.Payment{
		ID:           id,
		AthleteID:    r.AthleteID,
		Amount:       amount,
		PaymentType:  models.PaymentType(r.PaymentType),
		MonthCovered: r.MonthCovered,
		YearCovered:  r.YearCovered,
		Status:       models.PaymentStatus(r.Status),
		Notes:        r.Notes,
	}
	if r.PaymentDate != "" {
		date, err := time.Parse("2006-01-02", r.PaymentDate)
		if err != nil {
			return nil, fmt.Errorf("invalid payment date %q", r.PaymentDate)
		}
		p.PaymentDate = date
	}
	return p, nil
}

func CreatePaymentAPI(c *fiber.Ctx) error {
	var req paymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed: " + err.Error()})
	}

	payment, err := req.toPayment("")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	if err := database.UpsertPayment(config.GetDB(), payment); err != nil {
		log.Printf("Failed to create payment: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save payment"})
	}
	return c.Status(201).JSON(payment)
}

// UpdatePaymentAPI overwrites every field of an existing row; row count
// never changes on an update.
func UpdatePaymentAPI(c *fiber.Ctx) error {
	var req paymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed: " + err.Error()})
	}

	payment, err := req.toPayment(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	if err := database.UpsertPayment(config.GetDB(), payment); err != nil {
		log.Printf("Failed to update payment %s: %v", payment.ID, err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save payment"})
	}
	return c.JSON(payment)
}

func DeletePaymentAPI(c *fiber.Ctx) error {
	if err := database.DeletePayment(config.GetDB(), c.Params("id")); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete payment"})
	}
	return c.JSON(fiber.Map{"message": "Payment deleted"})
}

// GetReceiptAPI renders the payment receipt PDF. The PDF is produced
// entirely in memory, outside any data transaction.
func GetReceiptAPI(c *fiber.Ctx) error {
	payment, err := database.GetPaymentByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Payment not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch payment"})
	}
	athlete, err := database.GetAthleteByID(config.GetDB(), payment.AthleteID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch athlete"})
	}

	pdf, err := services.GenerateReceipt(payment, athlete)
	if err != nil {
		log.Printf("PDF generation error for payment %s: %v", payment.ID, err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to generate receipt"})
	}

	filename := fmt.Sprintf("receipt_%s_%s.pdf", payment.ID, time.Now().Format("20060102"))
	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	return c.Send(pdf)
}
