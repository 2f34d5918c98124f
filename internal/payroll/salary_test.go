package payroll

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepakk/fieldcare/internal/model"
)

func TestMonthlySalary(t *testing.T) {
	structure := model.SalaryStructure{
		TechnicianID:       uuid.New(),
		MonthlySalary:      30000,
		OvertimeRate:       100,
		ExpectedDailyHours: 8,
	}

	records := []model.AttendanceRecord{
		completedRecord(day(2024, time.November, 5), "09:00", "17:30"),
		completedRecord(day(2024, time.November, 8), "09:00", "17:30"),
		completedRecord(day(2024, time.November, 12), "09:00", "17:30"),
		absentRecord(day(2024, time.November, 15)),
		completedRecord(day(2024, time.November, 21), "10:00", "16:00"), // worked holiday, late, early leave
	}

	statement := MonthlySalary(structure, records, 2024, time.November, Policy{})

	assert.Equal(t, "2024-11", statement.Month)
	assert.Equal(t, 30, statement.DaysInMonth)
	assert.Equal(t, 1000.0, statement.PerDaySalary) // 30000 over a 30-day November

	// 3 worked non-Thursday days
	assert.Equal(t, 3000.0, statement.BaseSalary)
	// one paid Thursday, one worked holiday, two deducted
	assert.Equal(t, 1000.0, statement.ThursdayPaidSalary)
	assert.Equal(t, 1000.0, statement.ThursdayExtraPay)
	assert.Equal(t, 2000.0, statement.ThursdayDeductions)

	// 31.5h logged against 24h expected for the 3 base days
	assert.InDelta(t, 7.5, statement.OvertimeHours, 0.001)
	assert.InDelta(t, 750.0, statement.OvertimePay, 0.001)

	assert.Equal(t, 0.0, statement.HalfDayDeduction)
	assert.Equal(t, 1000.0, statement.AbsentDeduction)
	assert.Equal(t, 100.0, statement.LateDeduction) // 10% of a day
	assert.Equal(t, 3100.0, statement.TotalDeductions)

	// 3000 + 1000 + 1000 + 750 - 3100
	assert.Equal(t, 2650.0, statement.NetSalary)
}

func TestMonthlySalary_EmptyMonth(t *testing.T) {
	structure := model.SalaryStructure{
		TechnicianID:  uuid.New(),
		MonthlySalary: 31000,
	}

	statement := MonthlySalary(structure, nil, 2024, time.October, Policy{})

	assert.Equal(t, 31, statement.DaysInMonth)
	assert.Equal(t, 1000.0, statement.PerDaySalary)
	assert.Zero(t, statement.BaseSalary)
	assert.Zero(t, statement.OvertimePay)
	// every Thursday of an empty month is deducted
	require.Equal(t, statement.Attendance.TotalThursdays, statement.Attendance.ThursdaysDeducted)
	assert.Equal(t, float64(statement.Attendance.ThursdaysDeducted)*1000.0, statement.ThursdayDeductions)
	assert.Equal(t, -statement.ThursdayDeductions, statement.NetSalary)
}

func TestMonthlySalary_FebruaryPerDay(t *testing.T) {
	structure := model.SalaryStructure{TechnicianID: uuid.New(), MonthlySalary: 29000}

	statement := MonthlySalary(structure, nil, 2024, time.February, Policy{})
	assert.Equal(t, 29, statement.DaysInMonth)
	assert.Equal(t, 1000.0, statement.PerDaySalary)
}
