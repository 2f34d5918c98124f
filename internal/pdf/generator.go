package pdf

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/deepakk/fieldcare/internal/model"
)

type Generator struct {
	fontName string
}

func NewGenerator() *Generator {
	return &Generator{fontName: "Helvetica"}
}

// Generate renders a one-page payslip for a settled month.
func (g *Generator) Generate(statement model.SalaryStatement, technician model.Technician) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pdf.SetFont(g.fontName, "B", 14)
	pdf.CellFormat(0, 10, "Salary Statement", "", 1, "C", false, 0, "")

	pdf.SetFont(g.fontName, "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("%s / %s", safeValue(technician.FullName), formatMonth(statement.Month)), "", 1, "C", false, 0, "")
	if technician.Phone != "" {
		pdf.CellFormat(0, 6, technician.Phone, "", 1, "C", false, 0, "")
	}
	pdf.Ln(4)

	stats := statement.Attendance

	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 8, "Attendance", "", 1, "L", false, 0, "")
	attendanceRows := [][2]string{
		{"Days in month", fmt.Sprintf("%d", stats.DaysInMonth)},
		{"Present days", fmt.Sprintf("%d", stats.PresentDays)},
		{"Worked days (excl. Thursdays)", fmt.Sprintf("%d", stats.WorkedDays)},
		{"Absent days", fmt.Sprintf("%d", stats.AbsentDays)},
		{"Half days", fmt.Sprintf("%d", stats.HalfDays)},
		{"Late days", fmt.Sprintf("%d", stats.LateDays)},
		{"Total working hours", formatAmount(stats.TotalWorkingHours)},
	}
	drawTable(pdf, g.fontName, attendanceRows)
	pdf.Ln(3)

	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 8, "Thursday Holidays", "", 1, "L", false, 0, "")
	thursdayRows := [][2]string{
		{"Total Thursdays", fmt.Sprintf("%d", stats.TotalThursdays)},
		{"Paid", fmt.Sprintf("%d", stats.ThursdaysPaid)},
		{"Worked (double pay)", fmt.Sprintf("%d", stats.ThursdaysWorked)},
		{"Deducted", fmt.Sprintf("%d", stats.ThursdaysDeducted)},
	}
	drawTable(pdf, g.fontName, thursdayRows)
	pdf.Ln(3)

	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 8, "Settlement", "", 1, "L", false, 0, "")
	settlementRows := [][2]string{
		{"Monthly salary", formatAmount(statement.MonthlySalary)},
		{"Per-day salary", formatAmount(statement.PerDaySalary)},
		{"Base salary", formatAmount(statement.BaseSalary)},
		{"Thursday paid", formatAmount(statement.ThursdayPaidSalary)},
		{"Thursday extra pay", formatAmount(statement.ThursdayExtraPay)},
		{fmt.Sprintf("Overtime pay (%s h)", formatAmount(statement.OvertimeHours)), formatAmount(statement.OvertimePay)},
		{"Total deductions", formatAmount(statement.TotalDeductions)},
	}
	drawTable(pdf, g.fontName, settlementRows)
	pdf.Ln(2)

	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 8, fmt.Sprintf("Net salary: %s", formatAmount(statement.NetSalary)), "", 1, "R", false, 0, "")

	if !statement.CalculatedAt.IsZero() {
		pdf.SetFont(g.fontName, "", 9)
		pdf.CellFormat(0, 6, fmt.Sprintf("Calculated at %s", statement.CalculatedAt.Format("2006-01-02 15:04")), "", 1, "R", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func drawTable(pdf *gofpdf.Fpdf, fontName string, rows [][2]string) {
	pdf.SetFont(fontName, "", 10)
	for _, row := range rows {
		pdf.CellFormat(110, 7, row[0], "1", 0, "L", false, 0, "")
		pdf.CellFormat(50, 7, row[1], "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}
}

func safeValue(value string) string {
	if strings.TrimSpace(value) == "" {
		return "-"
	}
	return value
}

func formatAmount(value float64) string {
	return fmt.Sprintf("%.2f", value)
}

func formatMonth(yearMonth string) string {
	parsed, err := time.Parse("2006-01", yearMonth)
	if err != nil {
		return yearMonth
	}
	return parsed.Format("January 2006")
}
