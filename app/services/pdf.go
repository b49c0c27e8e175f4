package services

import (
	"bytes"
	"fmt"
	"time"

	"github.com/JLG-co/Karate-Manager-SQLite/app/models"
	"github.com/jung-kurt/gofpdf"
	qrcode "github.com/skip2/go-qrcode"
)

// ID card geometry in millimetres. Cards are standard CR80 size and batch
// sheets lay them out on A4.
const (
	cardWidth    = 85.6
	cardHeight   = 53.98
	sheetMargin  = 15.0
	cardSpacing  = 5.0
	cardsPerRow  = 2
	rowsPerSheet = 4
)

// cardValidity is how long a printed ID card stays valid.
const cardValidity = 365 * 24 * time.Hour

// QRPayload is the string encoded in an athlete's ID card QR code.
func QRPayload(athleteID, fullName string) string {
	return fmt.Sprintf("GALIA:%s:%s", athleteID, fullName)
}

// CardGridPosition returns the top-left corner of the i-th card on a batch
// sheet and whether a new page must be started before drawing it. Index is
// zero-based across the whole batch.
func CardGridPosition(index int) (x, y float64, newPage bool) {
	perPage := cardsPerRow * rowsPerSheet
	pos := index % perPage
	col := pos % cardsPerRow
	row := pos / cardsPerRow
	x = sheetMargin + float64(col)*(cardWidth+cardSpacing)
	y = sheetMargin + float64(row)*(cardHeight+cardSpacing)
	newPage = pos == 0
	return x, y, newPage
}

// GenerateReceipt renders a payment receipt as a single-page A4 PDF.
func GenerateReceipt(payment *models.Payment, athlete *models.Athlete) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, "Galia Club Karate", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 8, "Payment Receipt", "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "", 11)
	receiptLine(pdf, "Receipt No", payment.ID)
	receiptLine(pdf, "Date", payment.PaymentDate.Format("2006-01-02"))
	receiptLine(pdf, "Athlete", athlete.FullName)
	receiptLine(pdf, "Payment Type", string(payment.PaymentType))
	if payment.MonthCovered != nil && payment.YearCovered != nil {
		receiptLine(pdf, "Period Covered", fmt.Sprintf("%02d/%d", *payment.MonthCovered, *payment.YearCovered))
	}
	receiptLine(pdf, "Status", string(payment.Status))
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, fmt.Sprintf("Amount: %s DA", payment.Amount.StringFixed(2)), "T", 1, "R", false, 0, "")

	if payment.Notes != nil && *payment.Notes != "" {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "I", 10)
		pdf.MultiCell(0, 6, "Notes: "+*payment.Notes, "", "L", false)
	}

	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 6, fmt.Sprintf("Generated on %s", time.Now().Format("2006-01-02 15:04")), "", 1, "L", false, 0, "")

	return pdfBytes(pdf)
}

func receiptLine(pdf *gofpdf.Fpdf, label, value string) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(45, 8, label+":", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 8, value, "", 1, "L", false, 0, "")
}

// GenerateCompetitionResultsPDF renders a competition's result table.
func GenerateCompetitionResultsPDF(competition *models.Competition, results []*models.ResultView) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, competition.Name, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 7, fmt.Sprintf("%s - %s", competition.Date.Format("2006-01-02"), competition.Location), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(80, 8, "Athlete", "1", 0, "L", true, 0, "")
	pdf.CellFormat(60, 8, "Category", "1", 0, "L", true, 0, "")
	pdf.CellFormat(40, 8, "Result", "1", 1, "L", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, r := range results {
		pdf.CellFormat(80, 8, r.AthleteName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(60, 8, r.Category, "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 8, string(r.Result), "1", 1, "L", false, 0, "")
	}
	if len(results) == 0 {
		pdf.CellFormat(180, 8, "No results recorded", "1", 1, "C", false, 0, "")
	}

	return pdfBytes(pdf)
}

// GenerateIDCard renders a single athlete ID card at true card size.
func GenerateIDCard(athlete *models.Athlete, beltName string) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "", "")
	pdf.AddPageFormat("L", gofpdf.SizeType{Wd: cardWidth, Ht: cardHeight})
	if err := drawCard(pdf, athlete, beltName, 0, 0); err != nil {
		return nil, err
	}
	return pdfBytes(pdf)
}

// GenerateAllIDCards lays every athlete's card out on A4 sheets, filling
// each page before starting the next. beltNames maps belt rank ids to
// display names.
func GenerateAllIDCards(athletes []*models.Athlete, beltNames map[string]string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	for i, athlete := range athletes {
		x, y, newPage := CardGridPosition(i)
		if newPage {
			pdf.AddPage()
		}
		belt := "Unranked"
		if athlete.CurrentBeltRankID != nil {
			if name, ok := beltNames[*athlete.CurrentBeltRankID]; ok {
				belt = name
			}
		}
		if err := drawCard(pdf, athlete, belt, x, y); err != nil {
			return nil, err
		}
	}
	if len(athletes) == 0 {
		pdf.AddPage()
		pdf.SetFont("Helvetica", "", 12)
		pdf.CellFormat(0, 10, "No active athletes", "", 1, "C", false, 0, "")
	}
	return pdfBytes(pdf)
}

// drawCard draws one card with its top-left corner at (x, y).
func drawCard(pdf *gofpdf.Fpdf, athlete *models.Athlete, beltName string, x, y float64) error {
	pdf.Rect(x, y, cardWidth, cardHeight, "D")

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetXY(x+3, y+3)
	pdf.CellFormat(cardWidth-6, 5, "GALIA CLUB KARATE", "B", 0, "C", false, 0, "")

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetXY(x+3, y+11)
	pdf.CellFormat(cardWidth-28, 5, athlete.FullName, "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	pdf.SetXY(x+3, y+17)
	pdf.CellFormat(cardWidth-28, 4, "Belt: "+beltName, "", 0, "L", false, 0, "")
	pdf.SetXY(x+3, y+22)
	pdf.CellFormat(cardWidth-28, 4, "Member since: "+athlete.JoinedDate.Format("2006-01-02"), "", 0, "L", false, 0, "")
	validUntil := time.Now().Add(cardValidity)
	pdf.SetXY(x+3, y+27)
	pdf.CellFormat(cardWidth-28, 4, "Valid until: "+validUntil.Format("2006-01-02"), "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 6)
	pdf.SetXY(x+3, y+cardHeight-8)
	pdf.CellFormat(cardWidth-28, 4, "ID: "+athlete.ID, "", 0, "L", false, 0, "")

	png, err := qrcode.Encode(QRPayload(athlete.ID, athlete.FullName), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("encoding QR code: %w", err)
	}
	name := "qr-" + athlete.ID
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(png))
	pdf.ImageOptions(name, x+cardWidth-23, y+cardHeight-23, 20, 20, false, opts, 0, "")
	return nil
}

func pdfBytes(pdf *gofpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("rendering PDF: %w", err)
	}
	return buf.Bytes(), nil
}
