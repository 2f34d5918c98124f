package model

import (
	"time"

	"github.com/google/uuid"
)

type AttendanceStatus string

const (
	AttendanceStatusIncomplete AttendanceStatus = "incomplete"
	AttendanceStatusCheckedIn  AttendanceStatus = "checked-in"
	AttendanceStatusCompleted  AttendanceStatus = "completed"
)

// AttendanceRecord is one technician-day. It is created at first check-in,
// mutated once at check-out and immutable afterwards; a new day gets a new
// record. Times are wall-clock "HH:MM" strings, date comparisons happen on
// the Date field only.
type AttendanceRecord struct {
	ID           uuid.UUID
	TechnicianID uuid.UUID
	Date         time.Time
	CheckInTime  *string
	CheckOutTime *string
	WorkingHours float64
	Status       AttendanceStatus
	CreatedAt    time.Time
}
