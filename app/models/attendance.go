package models

import "time"

// Attendance is one athlete's record for one training day. There is at most
// one row per (athlete, calendar day); MarkAttendance upserts by that key.
type Attendance struct {
	ID        string           `json:"id"`
	AthleteID string           `json:"athlete_id"`
	Date      time.Time        `json:"date"`
	Status    AttendanceStatus `json:"status"`
	ClassTime *string          `json:"class_time,omitempty"`
}

// AttendanceItem is the merged day-view row: every active athlete appears,
// with StatusNone when no record exists for the day.
type AttendanceItem struct {
	AthleteID string           `json:"athlete_id"`
	FullName  string           `json:"full_name"`
	BeltName  string           `json:"belt_name"`
	Status    AttendanceStatus `json:"status"`
	Time      string           `json:"time"`
	RecordID  *string          `json:"record_id,omitempty"`
}

// AttendanceSummary holds the derived counts for a day view. Total counts
// active athletes, not records, so unmarked athletes dilute the rate.
type AttendanceSummary struct {
	PresentCount   int `json:"present_count"`
	LateCount      int `json:"late_count"`
	AbsentCount    int `json:"absent_count"`
	TotalCount     int `json:"total_count"`
	AttendanceRate int `json:"attendance_rate"`
}
