package excel

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/deepakk/fieldcare/internal/model"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Generate builds a salary statement workbook: a summary sheet with the full
// settlement breakdown and a detail sheet with the Thursday evaluations.
func (g *Generator) Generate(statement model.SalaryStatement, technician model.Technician) ([]byte, error) {
	file := excelize.NewFile()

	summarySheet := "Summary"
	file.SetSheetName("Sheet1", summarySheet)
	if err := g.writeSummary(file, summarySheet, statement, technician); err != nil {
		return nil, err
	}

	thursdaySheet := "Thursdays"
	file.NewSheet(thursdaySheet)
	if err := g.writeThursdays(file, thursdaySheet, statement); err != nil {
		return nil, err
	}

	file.SetActiveSheet(0)
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) writeSummary(file *excelize.File, sheet string, statement model.SalaryStatement, technician model.Technician) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	set("A1", "Technician")
	set("B1", technician.FullName)
	set("A2", "Phone")
	set("B2", technician.Phone)
	set("A3", "Month")
	set("B3", statement.Month)
	set("A4", "Monthly salary")
	set("B4", formatAmount(statement.MonthlySalary))
	set("A5", "Per-day salary")
	set("B5", formatAmount(statement.PerDaySalary))

	stats := statement.Attendance
	attendanceRow := 7
	attendance := [][2]interface{}{
		{"Days in month", stats.DaysInMonth},
		{"Present days", stats.PresentDays},
		{"Worked days (excl. Thursdays)", stats.WorkedDays},
		{"Absent days", stats.AbsentDays},
		{"Half days", stats.HalfDays},
		{"Incomplete days", stats.IncompleteDays},
		{"Late days", stats.LateDays},
		{"Early leave days", stats.EarlyLeaveDays},
		{"Total working hours", formatAmount(stats.TotalWorkingHours)},
		{"Average hours", formatAmount(stats.AverageHours)},
	}
	for i, pair := range attendance {
		set(fmt.Sprintf("A%d", attendanceRow+i), pair[0])
		set(fmt.Sprintf("B%d", attendanceRow+i), pair[1])
	}

	earningsRow := attendanceRow + len(attendance) + 1
	earnings := [][2]interface{}{
		{"Base salary", formatAmount(statement.BaseSalary)},
		{"Thursday paid", formatAmount(statement.ThursdayPaidSalary)},
		{"Thursday extra pay", formatAmount(statement.ThursdayExtraPay)},
		{"Overtime hours", formatAmount(statement.OvertimeHours)},
		{"Overtime pay", formatAmount(statement.OvertimePay)},
		{"Half-day deduction", formatAmount(statement.HalfDayDeduction)},
		{"Absent deduction", formatAmount(statement.AbsentDeduction)},
		{"Late deduction", formatAmount(statement.LateDeduction)},
		{"Thursday deductions", formatAmount(statement.ThursdayDeductions)},
		{"Total deductions", formatAmount(statement.TotalDeductions)},
		{"Net salary", formatAmount(statement.NetSalary)},
	}
	for i, pair := range earnings {
		set(fmt.Sprintf("A%d", earningsRow+i), pair[0])
		set(fmt.Sprintf("B%d", earningsRow+i), pair[1])
	}

	_ = file.SetColWidth(sheet, "A", "A", 34)
	_ = file.SetColWidth(sheet, "B", "B", 20)
	return nil
}

func (g *Generator) writeThursdays(file *excelize.File, sheet string, statement model.SalaryStatement) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	headers := []string{
		"Thursday",
		"Tuesday present",
		"Friday present",
		"Worked on Thursday",
		"Status",
	}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		set(cell, header)
	}

	for i, entry := range statement.Attendance.ThursdayDetails {
		row := 2 + i
		set(fmt.Sprintf("A%d", row), formatDate(entry.ThursdayDate))
		set(fmt.Sprintf("B%d", row), formatBool(entry.TuesdayPresent))
		set(fmt.Sprintf("C%d", row), formatBool(entry.FridayPresent))
		set(fmt.Sprintf("D%d", row), formatBool(entry.ThursdayWorked))
		set(fmt.Sprintf("E%d", row), string(entry.Status))
	}

	_ = file.SetColWidth(sheet, "A", "A", 14)
	_ = file.SetColWidth(sheet, "B", "D", 18)
	_ = file.SetColWidth(sheet, "E", "E", 20)
	return nil
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

func formatBool(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}

func formatAmount(value float64) string {
	return fmt.Sprintf("%.2f", value)
}
