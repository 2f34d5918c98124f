package model

import (
	"time"

	"github.com/google/uuid"
)

type Technician struct {
	ID       uuid.UUID
	FullName string
	Phone    string
	IsActive bool
}

// SalaryStructure is the configured pay for a technician. PerDaySalary is a
// reference value over a 30-day base; actual per-day pay is derived from the
// real number of days in the month being settled.
type SalaryStructure struct {
	TechnicianID       uuid.UUID
	MonthlySalary      float64
	PerDaySalary       float64
	OvertimeRate       float64
	ExpectedDailyHours float64
	UpdatedAt          time.Time
}
