package models

// AttendanceStatus defines the possible status values for a training day.
// StatusNone is a pseudo-status: an athlete with no record, or an un-marked
// record, counts toward the day's total but not toward present/late/absent.
type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "Present"
	StatusLate    AttendanceStatus = "Late"
	StatusAbsent  AttendanceStatus = "Absent"
	StatusNone    AttendanceStatus = "None"
)

// PaymentStatus defines the possible status values for a payment row.
type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "Paid"
	PaymentUnpaid  PaymentStatus = "Unpaid"
	PaymentPartial PaymentStatus = "Partial"
	PaymentOverdue PaymentStatus = "Overdue"
)

// PaymentType defines what a payment is for.
type PaymentType string

const (
	TypeMonthlyFee    PaymentType = "Monthly Fee"
	TypeYearlyLicense PaymentType = "Yearly License"
	TypeEquipment     PaymentType = "Equipment"
	TypeOther         PaymentType = "Other"
)

// ResultStatus defines the outcome of an athlete's entry in a competition
// category. New entries start as Registered.
type ResultStatus string

const (
	ResultRegistered  ResultStatus = "Registered"
	ResultGold        ResultStatus = "Gold"
	ResultSilver      ResultStatus = "Silver"
	ResultBronze      ResultStatus = "Bronze"
	ResultParticipant ResultStatus = "Participant"
)

// Gender defines the possible gender values for an athlete.
type Gender string

const (
	Male   Gender = "Male"
	Female Gender = "Female"
)

// Settings keys. Values are free-form strings; numeric parsing happens at
// the point of use.
const (
	SettingMonthlyFee    = "monthly_fee"
	SettingYearlyLicense = "yearly_license"
)
