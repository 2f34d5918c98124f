package payroll

import (
	"fmt"
	"time"

	"github.com/deepakk/fieldcare/internal/model"
)

// MonthlySalary settles one month for one technician. The per-day rate comes
// from the real length of the month, not the 30-day reference stored on the
// salary structure, so February and July pay out the same monthly salary for
// full attendance.
func MonthlySalary(structure model.SalaryStructure, records []model.AttendanceRecord, year int, month time.Month, policy Policy) model.SalaryStatement {
	policy = policy.withDefaults()
	if structure.ExpectedDailyHours > 0 {
		policy.ExpectedDailyHours = structure.ExpectedDailyHours
	}

	stats := MonthlyStatsWithThursdays(records, year, month, policy)
	perDay := 0.0
	if stats.DaysInMonth > 0 {
		perDay = structure.MonthlySalary / float64(stats.DaysInMonth)
	}

	baseSalary := float64(stats.WorkedDays) * perDay
	thursdayPaid := float64(stats.ThursdaysPaid) * perDay
	thursdayExtra := float64(stats.ThursdaysWorked) * perDay
	thursdayDeductions := float64(stats.ThursdaysDeducted) * perDay

	overtimeHours := stats.TotalWorkingHours - float64(stats.WorkedDays)*policy.ExpectedDailyHours
	if overtimeHours < 0 {
		overtimeHours = 0
	}
	overtimePay := overtimeHours * structure.OvertimeRate

	halfDayDeduction := float64(stats.HalfDays) * perDay / 2
	absentDeduction := float64(stats.AbsentDays) * perDay
	lateDeduction := float64(stats.LateDays) * perDay * policy.LateDeductionRate
	totalDeductions := halfDayDeduction + absentDeduction + lateDeduction + thursdayDeductions

	netSalary := baseSalary + thursdayPaid + thursdayExtra + overtimePay - totalDeductions

	return model.SalaryStatement{
		TechnicianID: structure.TechnicianID.String(),
		Month:        fmt.Sprintf("%04d-%02d", year, month),

		MonthlySalary: structure.MonthlySalary,
		PerDaySalary:  round2(perDay),
		DaysInMonth:   stats.DaysInMonth,
		Attendance:    stats,

		BaseSalary:         round2(baseSalary),
		ThursdayPaidSalary: round2(thursdayPaid),
		ThursdayExtraPay:   round2(thursdayExtra),
		OvertimeHours:      round2(overtimeHours),
		OvertimePay:        round2(overtimePay),

		HalfDayDeduction:   round2(halfDayDeduction),
		AbsentDeduction:    round2(absentDeduction),
		LateDeduction:      round2(lateDeduction),
		ThursdayDeductions: round2(thursdayDeductions),
		TotalDeductions:    round2(totalDeductions),

		NetSalary: round2(netSalary),
	}
}
