package model

import "time"

type ThursdayStatus string

const (
	ThursdayStatusPaid            ThursdayStatus = "paid"
	ThursdayStatusDeducted        ThursdayStatus = "deducted"
	ThursdayStatusWorkedOnHoliday ThursdayStatus = "worked_on_holiday"
)

// ThursdayEntry is the evaluation of one Thursday holiday against attendance
// on the surrounding Tuesday and Friday. It is a projection over attendance
// records, recomputed on demand and never stored as authoritative data.
type ThursdayEntry struct {
	ThursdayDate   time.Time
	Tuesday        time.Time
	Friday         time.Time
	TuesdayPresent bool
	FridayPresent  bool
	ThursdayWorked bool
	Status         ThursdayStatus
}

// AttendanceStats aggregates one month of attendance records.
type AttendanceStats struct {
	DaysInMonth       int
	PresentDays       int
	AbsentDays        int
	WorkedDays        int // present days excluding Thursdays
	HalfDays          int
	IncompleteDays    int
	LateDays          int
	EarlyLeaveDays    int
	TotalWorkingHours float64
	AverageHours      float64

	TotalThursdays    int
	ThursdaysPaid     int
	ThursdaysDeducted int
	ThursdaysWorked   int
	ThursdayDetails   []ThursdayEntry
}

// SalaryStatement is a settled month for one technician.
type SalaryStatement struct {
	TechnicianID string
	Month        string // YYYY-MM

	MonthlySalary float64
	PerDaySalary  float64
	DaysInMonth   int
	Attendance    AttendanceStats

	BaseSalary         float64
	ThursdayPaidSalary float64
	ThursdayExtraPay   float64
	OvertimeHours      float64
	OvertimePay        float64

	HalfDayDeduction   float64
	AbsentDeduction    float64
	LateDeduction      float64
	ThursdayDeductions float64
	TotalDeductions    float64

	NetSalary    float64
	CalculatedAt time.Time
}
