package payroll

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/deepakk/fieldcare/internal/model"
)

// Pure attendance classification and the Thursday-holiday pay rule. Like the
// AMC engine, nothing here does I/O; callers hand in a month of attendance
// records and persist whatever comes back.

var ErrInvalidTimeRange = errors.New("check-out precedes check-in")

type DayClass string

const (
	DayPresent    DayClass = "present"
	DayIncomplete DayClass = "incomplete"
	DayAbsent     DayClass = "absent"
)

// Policy carries the configured shift expectations. Zero values are filled
// from DefaultPolicy so an unset config never divides by zero.
type Policy struct {
	ExpectedStartTime  string  // "HH:MM", late arrival after this
	ExpectedEndTime    string  // "HH:MM", early leave before this
	ExpectedDailyHours float64 // standard shift length
	LateDeductionRate  float64 // fraction of a day's pay per late day
}

func DefaultPolicy() Policy {
	return Policy{
		ExpectedStartTime:  "09:00",
		ExpectedEndTime:    "17:30",
		ExpectedDailyHours: 8,
		LateDeductionRate:  0.1,
	}
}

func (p Policy) withDefaults() Policy {
	def := DefaultPolicy()
	if p.ExpectedStartTime == "" {
		p.ExpectedStartTime = def.ExpectedStartTime
	}
	if p.ExpectedEndTime == "" {
		p.ExpectedEndTime = def.ExpectedEndTime
	}
	if p.ExpectedDailyHours <= 0 {
		p.ExpectedDailyHours = def.ExpectedDailyHours
	}
	if p.LateDeductionRate <= 0 {
		p.LateDeductionRate = def.LateDeductionRate
	}
	return p
}

// ClassifyDay buckets a single technician-day. A missing record is an
// absence; a record with a check-in but no check-out is an incomplete day.
func ClassifyDay(record *model.AttendanceRecord) DayClass {
	if record == nil {
		return DayAbsent
	}
	if isPresent(record) {
		return DayPresent
	}
	if record.Status == model.AttendanceStatusCheckedIn ||
		(record.CheckInTime != nil && record.CheckOutTime == nil) {
		return DayIncomplete
	}
	return DayAbsent
}

// WorkingHours is the elapsed time between two same-day wall-clock stamps.
// Faulty upstream capture (checkout before checkin) is reported, not guessed
// around.
func WorkingHours(checkIn, checkOut string) (float64, error) {
	in, err := parseClock(checkIn)
	if err != nil {
		return 0, err
	}
	out, err := parseClock(checkOut)
	if err != nil {
		return 0, err
	}
	if out < in {
		return 0, fmt.Errorf("%w: %s -> %s", ErrInvalidTimeRange, checkIn, checkOut)
	}
	return round2(float64(out-in) / 60), nil
}

// ThursdayPayStatus applies the Thursday-holiday decision table. Thursday is
// a default paid holiday, but the pay is earned by showing up on the
// surrounding Tuesday and Friday. Actually working the holiday wins
// unconditionally.
//
//	tuesdayPresent  fridayPresent  thursdayWorked | status
//	any             any            true           | worked_on_holiday
//	true            true           false          | paid
//	otherwise                      false          | deducted
func ThursdayPayStatus(tuesdayPresent, fridayPresent, thursdayWorked bool) model.ThursdayStatus {
	if thursdayWorked {
		return model.ThursdayStatusWorkedOnHoliday
	}
	if tuesdayPresent && fridayPresent {
		return model.ThursdayStatusPaid
	}
	return model.ThursdayStatusDeducted
}

// ThursdaysInMonth lists every Thursday of a calendar month.
func ThursdaysInMonth(year int, month time.Month) []time.Time {
	var thursdays []time.Time
	last := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	for day := 1; day <= last; day++ {
		d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
		if d.Weekday() == time.Thursday {
			thursdays = append(thursdays, d)
		}
	}
	return thursdays
}

// TuesdayFridayFor returns the adjacent working days of a Thursday's
// Monday-Sunday week: the Tuesday two days before and the Friday one day
// after.
func TuesdayFridayFor(thursday time.Time) (tuesday, friday time.Time) {
	return thursday.AddDate(0, 0, -2), thursday.AddDate(0, 0, 1)
}

// ThursdayBreakdown evaluates every Thursday of the month against the
// attendance records. The result is a projection: recompute it whenever the
// records change, never treat a stored copy as authoritative.
func ThursdayBreakdown(records []model.AttendanceRecord, year int, month time.Month) []model.ThursdayEntry {
	byDate := mapByDate(records)

	var entries []model.ThursdayEntry
	for _, thursday := range ThursdaysInMonth(year, month) {
		tuesday, friday := TuesdayFridayFor(thursday)

		tuesdayPresent := isPresent(byDate[dateKey(tuesday)])
		fridayPresent := isPresent(byDate[dateKey(friday)])
		thursdayWorked := isPresent(byDate[dateKey(thursday)])

		entries = append(entries, model.ThursdayEntry{
			ThursdayDate:   thursday,
			Tuesday:        tuesday,
			Friday:         friday,
			TuesdayPresent: tuesdayPresent,
			FridayPresent:  fridayPresent,
			ThursdayWorked: thursdayWorked,
			Status:         ThursdayPayStatus(tuesdayPresent, fridayPresent, thursdayWorked),
		})
	}
	return entries
}

// MonthlyStats aggregates a month of records: present/absent/half days, late
// arrivals, early leaves, hour totals. This is the plain roll-up; payroll
// callers want MonthlyStatsWithThursdays, which settles holidays on top.
func MonthlyStats(records []model.AttendanceRecord, policy Policy) model.AttendanceStats {
	policy = policy.withDefaults()
	var stats model.AttendanceStats

	for i := range records {
		record := &records[i]
		switch ClassifyDay(record) {
		case DayPresent:
			stats.PresentDays++
			stats.TotalWorkingHours += record.WorkingHours
			if record.WorkingHours < policy.ExpectedDailyHours/2 {
				stats.HalfDays++
			}
			if clockAfter(*record.CheckInTime, policy.ExpectedStartTime) {
				stats.LateDays++
			}
			if clockBefore(*record.CheckOutTime, policy.ExpectedEndTime) {
				stats.EarlyLeaveDays++
			}
		case DayIncomplete:
			stats.IncompleteDays++
			stats.HalfDays++
		case DayAbsent:
			stats.AbsentDays++
		}
	}

	stats.TotalWorkingHours = round2(stats.TotalWorkingHours)
	if stats.PresentDays > 0 {
		stats.AverageHours = round2(stats.TotalWorkingHours / float64(stats.PresentDays))
	}
	return stats
}

// MonthlyStatsWithThursdays is the payroll-grade aggregation: Thursdays are
// pulled out of the plain present/absent counts and settled through the
// holiday rule instead. WorkedDays deliberately excludes Thursdays — a worked
// holiday is paid as ThursdaysWorked extra pay, not as a base day.
func MonthlyStatsWithThursdays(records []model.AttendanceRecord, year int, month time.Month, policy Policy) model.AttendanceStats {
	policy = policy.withDefaults()
	var stats model.AttendanceStats
	stats.DaysInMonth = time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()

	stats.ThursdayDetails = ThursdayBreakdown(records, year, month)
	stats.TotalThursdays = len(stats.ThursdayDetails)
	for _, entry := range stats.ThursdayDetails {
		switch entry.Status {
		case model.ThursdayStatusWorkedOnHoliday:
			stats.ThursdaysWorked++
		case model.ThursdayStatusPaid:
			stats.ThursdaysPaid++
		case model.ThursdayStatusDeducted:
			stats.ThursdaysDeducted++
		}
	}

	for i := range records {
		record := &records[i]
		isThursday := record.Date.Weekday() == time.Thursday

		switch ClassifyDay(record) {
		case DayPresent:
			stats.PresentDays++
			if !isThursday {
				stats.WorkedDays++
			}
			stats.TotalWorkingHours += record.WorkingHours
			if record.WorkingHours < policy.ExpectedDailyHours/2 {
				stats.HalfDays++
			}
			if clockAfter(*record.CheckInTime, policy.ExpectedStartTime) {
				stats.LateDays++
			}
			if clockBefore(*record.CheckOutTime, policy.ExpectedEndTime) {
				stats.EarlyLeaveDays++
			}
		case DayIncomplete:
			stats.IncompleteDays++
			stats.HalfDays++
		case DayAbsent:
			// Thursday absences are settled by the holiday rule above
			if !isThursday {
				stats.AbsentDays++
			}
		}
	}

	stats.TotalWorkingHours = round2(stats.TotalWorkingHours)
	if stats.PresentDays > 0 {
		stats.AverageHours = round2(stats.TotalWorkingHours / float64(stats.PresentDays))
	}
	return stats
}

func isPresent(record *model.AttendanceRecord) bool {
	return record != nil &&
		record.Status == model.AttendanceStatusCompleted &&
		record.CheckInTime != nil &&
		record.CheckOutTime != nil
}

func mapByDate(records []model.AttendanceRecord) map[string]*model.AttendanceRecord {
	byDate := make(map[string]*model.AttendanceRecord, len(records))
	for i := range records {
		byDate[dateKey(records[i].Date)] = &records[i]
	}
	return byDate
}

func dateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// parseClock converts "HH:MM" (or "HH:MM:SS") to minutes since midnight.
func parseClock(value string) (int, error) {
	layouts := []string{"15:04", "15:04:05"}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Hour()*60 + t.Minute(), nil
		}
	}
	return 0, fmt.Errorf("invalid clock time %q", value)
}

func clockAfter(value, reference string) bool {
	v, err := parseClock(value)
	if err != nil {
		return false
	}
	r, err := parseClock(reference)
	if err != nil {
		return false
	}
	return v > r
}

func clockBefore(value, reference string) bool {
	v, err := parseClock(value)
	if err != nil {
		return false
	}
	r, err := parseClock(reference)
	if err != nil {
		return false
	}
	return v < r
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
