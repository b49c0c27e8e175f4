package database

import (
	"database/sql"
	"math"
	"strings"
	"time"

	"github.com/JLG-co/Karate-Manager-SQLite/app/models"
	"github.com/google/uuid"
)

// dayBounds returns the half-open [start, start+24h) window for a calendar day.
func dayBounds(day time.Time) (time.Time, time.Time) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	return start, start.Add(24 * time.Hour)
}

// MarkAttendance upserts the (athlete, day) record. An existing record gets
// the new status, with class_time stamped to "now" unless the status is
// None; marking None with no record is a no-op. Repeating the same call
// leaves the ledger unchanged.
func MarkAttendance(db *sql.DB, athleteID string, day time.Time, status models.AttendanceStatus, now time.Time) error {
	start, end := dayBounds(day)

	var recordID string
	err := db.QueryRow(`SELECT id FROM attendance WHERE athlete_id = $1 AND date >= $2 AND date < $3`,
		athleteID, start, end).Scan(&recordID)

	switch {
	case err == nil:
		if status != models.StatusNone {
			classTime := now.Format("15:04")
			_, err = db.Exec(`UPDATE attendance SET status = $1, class_time = $2 WHERE id = $3`,
				status, classTime, recordID)
		} else {
			_, err = db.Exec(`UPDATE attendance SET status = $1 WHERE id = $2`, status, recordID)
		}
		return err
	case err == sql.ErrNoRows:
		if status == models.StatusNone {
			return nil
		}
		classTime := now.Format("15:04")
		_, err = db.Exec(`INSERT INTO attendance (id, athlete_id, date, status, class_time)
			VALUES ($1, $2, $3, $4, $5)`,
			uuid.NewString(), athleteID, start, status, classTime)
		return err
	default:
		return err
	}
}

// GetDayView merges every active athlete (ordered by name) with the day's
// attendance records and belt names. Athletes without a record appear with
// StatusNone so the caller's totals count the whole roster.
func GetDayView(db *sql.DB, day time.Time) ([]*models.AttendanceItem, error) {
	athletes, err := GetAthletes(db, AthleteFilters{})
	if err != nil {
		return nil, err
	}
	records, err := getAttendanceForDay(db, day)
	if err != nil {
		return nil, err
	}
	belts, err := GetBeltNameMap(db)
	if err != nil {
		return nil, err
	}

	recordMap := make(map[string]*models.Attendance, len(records))
	for _, r := range records {
		recordMap[r.AthleteID] = r
	}

	items := make([]*models.AttendanceItem, 0, len(athletes))
	for _, a := range athletes {
		item := &models.AttendanceItem{
			AthleteID: a.ID,
			FullName:  a.FullName,
			BeltName:  "Unranked",
			Status:    models.StatusNone,
		}
		if a.CurrentBeltRankID != nil {
			if name, ok := belts[*a.CurrentBeltRankID]; ok {
				item.BeltName = name
			}
		}
		if r, ok := recordMap[a.ID]; ok {
			item.Status = r.Status
			item.RecordID = &r.ID
			if r.ClassTime != nil {
				item.Time = *r.ClassTime
			}
		}
		items = append(items, item)
	}
	return items, nil
}

func getAttendanceForDay(db *sql.DB, day time.Time) ([]*models.Attendance, error) {
	start, end := dayBounds(day)
	return GetAttendanceInRange(db, start, end)
}

// GetAttendanceInRange returns records with date in the half-open [start, end).
func GetAttendanceInRange(db *sql.DB, start, end time.Time) ([]*models.Attendance, error) {
	query := `SELECT id, athlete_id, date, status, class_time FROM attendance
			  WHERE date >= $1 AND date < $2 ORDER BY date`
	rows, err := db.Query(query, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.Attendance
	for rows.Next() {
		r := &models.Attendance{}
		if err := rows.Scan(&r.ID, &r.AthleteID, &r.Date, &r.Status, &r.ClassTime); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

func GetAttendanceSince(db *sql.DB, since time.Time) ([]*models.Attendance, error) {
	return GetAttendanceInRange(db, since, time.Now().Add(24*time.Hour))
}

// SummarizeDay derives the day counts from a merged day view. Total is the
// roster size; athletes at StatusNone count toward total only. The rate is
// round((present+late)/total*100) as an integer percentage, 0 on an empty
// roster.
func SummarizeDay(items []*models.AttendanceItem) models.AttendanceSummary {
	s := models.AttendanceSummary{TotalCount: len(items)}
	for _, item := range items {
		switch item.Status {
		case models.StatusPresent:
			s.PresentCount++
		case models.StatusLate:
			s.LateCount++
		case models.StatusAbsent:
			s.AbsentCount++
		}
	}
	if s.TotalCount > 0 {
		s.AttendanceRate = int(math.Round(float64(s.PresentCount+s.LateCount) / float64(s.TotalCount) * 100))
	}
	return s
}

// FilterDayView applies the case-insensitive name search to a day view.
func FilterDayView(items []*models.AttendanceItem, search string) []*models.AttendanceItem {
	if search == "" {
		return items
	}
	needle := strings.ToLower(search)
	filtered := make([]*models.AttendanceItem, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.FullName), needle) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}
