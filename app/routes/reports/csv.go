package reports

import (
	"bytes"
	"encoding/csv"

	"github.com/JLG-co/Karate-Manager-SQLite/app/models"
)

// Report CSV schemas. Column order is part of the export contract and must
// not change: downstream federation spreadsheets import these by position.

func AthleteReportRows(athletes []*models.Athlete) [][]string {
	rows := [][]string{{"ID", "Full Name", "Gender", "Phone", "Belt Rank"}}
	for _, a := range athletes {
		phone := ""
		if a.Phone != nil {
			phone = *a.Phone
		}
		belt := ""
		if a.CurrentBeltRankID != nil {
			belt = *a.CurrentBeltRankID
		}
		rows = append(rows, []string{a.ID, a.FullName, string(a.Gender), phone, belt})
	}
	return rows
}

func PaymentReportRows(payments []*models.Payment) [][]string {
	rows := [][]string{{"ID", "Athlete ID", "Amount", "Type", "Date", "Status"}}
	for _, p := range payments {
		rows = append(rows, []string{
			p.ID,
			p.AthleteID,
			p.Amount.String(),
			string(p.PaymentType),
			p.PaymentDate.Format("2006-01-02"),
			string(p.Status),
		})
	}
	return rows
}

func AttendanceReportRows(records []*models.Attendance) [][]string {
	rows := [][]string{{"Date", "Athlete ID", "Status", "Time"}}
	for _, r := range records {
		classTime := ""
		if r.ClassTime != nil {
			classTime = *r.ClassTime
		}
		rows = append(rows, []string{
			r.Date.Format("2006-01-02"),
			r.AthleteID,
			string(r.Status),
			classTime,
		})
	}
	return rows
}

func CompetitionReportRows(results []*models.CompetitionResult) [][]string {
	rows := [][]string{{"Competition", "Athlete ID", "Result", "Category"}}
	for _, r := range results {
		rows = append(rows, []string{r.CompetitionID, r.AthleteID, string(r.Result), r.Category})
	}
	return rows
}

func EncodeCSV(rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	if err := writer.WriteAll(rows); err != nil {
		return nil, err
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
