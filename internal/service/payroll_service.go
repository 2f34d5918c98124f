package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/deepakk/fieldcare/internal/config"
	"github.com/deepakk/fieldcare/internal/model"
	"github.com/deepakk/fieldcare/internal/payroll"
)

// AttendanceStore is the persistence surface of the payroll workflow.
type AttendanceStore interface {
	GetRecord(ctx context.Context, technicianID uuid.UUID, day time.Time) (*model.AttendanceRecord, error)
	CreateRecord(ctx context.Context, record model.AttendanceRecord) (*model.AttendanceRecord, error)
	UpdateRecord(ctx context.Context, record *model.AttendanceRecord) error
	ListMonth(ctx context.Context, technicianID uuid.UUID, year int, month time.Month) ([]model.AttendanceRecord, error)
	GetTechnician(ctx context.Context, id uuid.UUID) (*model.Technician, error)
	GetSalaryStructure(ctx context.Context, technicianID uuid.UUID) (*model.SalaryStructure, error)
	SaveSalaryStructure(ctx context.Context, structure model.SalaryStructure) error
	SaveSalaryStatement(ctx context.Context, technicianID uuid.UUID, statement model.SalaryStatement) error
	ListSalaryStatements(ctx context.Context, technicianID uuid.UUID, limit int) ([]model.SalaryStatement, error)
}

// StatementExporter renders a salary statement as a spreadsheet.
type StatementExporter interface {
	Generate(statement model.SalaryStatement, technician model.Technician) ([]byte, error)
}

// PayslipGenerator renders a salary statement as a payslip document.
type PayslipGenerator interface {
	Generate(statement model.SalaryStatement, technician model.Technician) ([]byte, error)
}

// salary structures keep a per-day reference over a fixed 30-day base; the
// real settlement always derives per-day pay from the actual month
const salaryReferenceDays = 30

type PayrollService struct {
	store  AttendanceStore
	excel  StatementExporter
	pdf    PayslipGenerator
	policy payroll.Policy
	log    zerolog.Logger
	now    func() time.Time
}

func NewPayrollService(store AttendanceStore, excel StatementExporter, pdf PayslipGenerator, cfg *config.Config, log zerolog.Logger) *PayrollService {
	return &PayrollService{
		store: store,
		excel: excel,
		pdf:   pdf,
		policy: payroll.Policy{
			ExpectedStartTime:  cfg.Payroll.ExpectedStartTime,
			ExpectedEndTime:    cfg.Payroll.ExpectedEndTime,
			ExpectedDailyHours: cfg.Payroll.ExpectedDailyHours,
			LateDeductionRate:  cfg.Payroll.LateDeductionRate,
		},
		log: log,
		now: time.Now,
	}
}

type CheckInput struct {
	TechnicianID uuid.UUID
	Day          time.Time
	Clock        string // "HH:MM"
	Principal    model.Principal
}

// CheckIn opens the technician's attendance record for the day. One record
// per technician per day; a second check-in is rejected, not merged.
func (s *PayrollService) CheckIn(ctx context.Context, input CheckInput) (*model.AttendanceRecord, error) {
	if err := s.authorizeAttendance(input.Principal, input.TechnicianID); err != nil {
		return nil, err
	}
	if input.Clock == "" {
		return nil, fmt.Errorf("%w: check-in time is required", ErrInvalidInput)
	}

	existing, err := s.store.GetRecord(ctx, input.TechnicianID, input.Day)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil && existing.CheckInTime != nil {
		return nil, fmt.Errorf("%w: already checked in at %s", ErrConflict, *existing.CheckInTime)
	}

	if existing != nil {
		existing.CheckInTime = &input.Clock
		existing.Status = model.AttendanceStatusCheckedIn
		if err := s.store.UpdateRecord(ctx, existing); err != nil {
			return nil, err
		}
		return existing, nil
	}

	return s.store.CreateRecord(ctx, model.AttendanceRecord{
		TechnicianID: input.TechnicianID,
		Date:         input.Day,
		CheckInTime:  &input.Clock,
		Status:       model.AttendanceStatusCheckedIn,
	})
}

// CheckOut closes the day's record and fixes its working hours. After this
// the record is immutable; the next day starts a fresh one.
func (s *PayrollService) CheckOut(ctx context.Context, input CheckInput) (*model.AttendanceRecord, error) {
	if err := s.authorizeAttendance(input.Principal, input.TechnicianID); err != nil {
		return nil, err
	}
	if input.Clock == "" {
		return nil, fmt.Errorf("%w: check-out time is required", ErrInvalidInput)
	}

	record, err := s.store.GetRecord(ctx, input.TechnicianID, input.Day)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: no check-in for this day", ErrNotFound)
		}
		return nil, err
	}
	if record.CheckInTime == nil {
		return nil, fmt.Errorf("%w: must check in before checking out", ErrConflict)
	}
	if record.CheckOutTime != nil {
		return nil, fmt.Errorf("%w: already checked out at %s", ErrConflict, *record.CheckOutTime)
	}

	hours, err := payroll.WorkingHours(*record.CheckInTime, input.Clock)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	record.CheckOutTime = &input.Clock
	record.WorkingHours = hours
	record.Status = model.AttendanceStatusCompleted
	if err := s.store.UpdateRecord(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// MonthlyAttendance is the plain aggregation shown on the attendance history
// screen, without payroll settlement.
func (s *PayrollService) MonthlyAttendance(ctx context.Context, technicianID uuid.UUID, yearMonth string, principal model.Principal) (*model.AttendanceStats, error) {
	if err := s.authorizeAttendance(principal, technicianID); err != nil {
		return nil, err
	}
	year, month, err := parseYearMonth(yearMonth)
	if err != nil {
		return nil, err
	}

	records, err := s.store.ListMonth(ctx, technicianID, year, month)
	if err != nil {
		return nil, err
	}
	stats := payroll.MonthlyStatsWithThursdays(records, year, month, s.policy)
	return &stats, nil
}

// MonthlyStatement settles a month through the Thursday-holiday rules and
// stores the result. Recomputing is always safe: the statement is a pure
// function of the attendance records.
func (s *PayrollService) MonthlyStatement(ctx context.Context, technicianID uuid.UUID, yearMonth string, principal model.Principal) (*model.SalaryStatement, error) {
	if err := s.authorizeAttendance(principal, technicianID); err != nil {
		return nil, err
	}
	year, month, err := parseYearMonth(yearMonth)
	if err != nil {
		return nil, err
	}

	structure, err := s.store.GetSalaryStructure(ctx, technicianID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if structure.MonthlySalary <= 0 {
		return nil, fmt.Errorf("%w: salary not configured for technician", ErrConflict)
	}

	records, err := s.store.ListMonth(ctx, technicianID, year, month)
	if err != nil {
		return nil, err
	}

	statement := payroll.MonthlySalary(*structure, records, year, month, s.policy)
	statement.CalculatedAt = s.now()

	if err := s.store.SaveSalaryStatement(ctx, technicianID, statement); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("technician_id", technicianID.String()).
		Str("month", statement.Month).
		Float64("net_salary", statement.NetSalary).
		Msg("salary statement calculated")
	return &statement, nil
}

type SetSalaryInput struct {
	TechnicianID       uuid.UUID
	MonthlySalary      float64
	OvertimeRate       float64
	ExpectedDailyHours float64
	Principal          model.Principal
}

func (s *PayrollService) SetSalary(ctx context.Context, input SetSalaryInput) (*model.SalaryStructure, error) {
	if !input.Principal.IsAdmin() {
		return nil, ErrPermissionDenied
	}
	if input.MonthlySalary <= 0 {
		return nil, fmt.Errorf("%w: monthly_salary must be positive", ErrInvalidInput)
	}

	if _, err := s.store.GetTechnician(ctx, input.TechnicianID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	expectedHours := input.ExpectedDailyHours
	if expectedHours <= 0 {
		expectedHours = s.policy.ExpectedDailyHours
	}

	structure := model.SalaryStructure{
		TechnicianID:       input.TechnicianID,
		MonthlySalary:      input.MonthlySalary,
		PerDaySalary:       input.MonthlySalary / salaryReferenceDays,
		OvertimeRate:       input.OvertimeRate,
		ExpectedDailyHours: expectedHours,
		UpdatedAt:          s.now(),
	}
	if err := s.store.SaveSalaryStructure(ctx, structure); err != nil {
		return nil, err
	}
	return &structure, nil
}

func (s *PayrollService) SalaryHistory(ctx context.Context, technicianID uuid.UUID, months int, principal model.Principal) ([]model.SalaryStatement, error) {
	if err := s.authorizeAttendance(principal, technicianID); err != nil {
		return nil, err
	}
	return s.store.ListSalaryStatements(ctx, technicianID, months)
}

type ExportResult struct {
	FileName string
	Content  []byte
}

func (s *PayrollService) ExportStatement(ctx context.Context, technicianID uuid.UUID, yearMonth string, principal model.Principal) (*ExportResult, error) {
	statement, technician, err := s.statementWithTechnician(ctx, technicianID, yearMonth, principal)
	if err != nil {
		return nil, err
	}

	content, err := s.excel.Generate(*statement, *technician)
	if err != nil {
		return nil, err
	}
	return &ExportResult{
		FileName: fmt.Sprintf("payroll-%s-%s.xlsx", technicianID, statement.Month),
		Content:  content,
	}, nil
}

func (s *PayrollService) Payslip(ctx context.Context, technicianID uuid.UUID, yearMonth string, principal model.Principal) (*ExportResult, error) {
	statement, technician, err := s.statementWithTechnician(ctx, technicianID, yearMonth, principal)
	if err != nil {
		return nil, err
	}

	content, err := s.pdf.Generate(*statement, *technician)
	if err != nil {
		return nil, err
	}
	return &ExportResult{
		FileName: fmt.Sprintf("payslip-%s-%s.pdf", technicianID, statement.Month),
		Content:  content,
	}, nil
}

func (s *PayrollService) statementWithTechnician(ctx context.Context, technicianID uuid.UUID, yearMonth string, principal model.Principal) (*model.SalaryStatement, *model.Technician, error) {
	statement, err := s.MonthlyStatement(ctx, technicianID, yearMonth, principal)
	if err != nil {
		return nil, nil, err
	}
	technician, err := s.store.GetTechnician(ctx, technicianID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}
	return statement, technician, nil
}

// authorizeAttendance lets admins at everything and technicians only at
// their own records.
func (s *PayrollService) authorizeAttendance(principal model.Principal, technicianID uuid.UUID) error {
	if principal.IsAdmin() {
		return nil
	}
	if principal.IsTechnician() && principal.TechnicianID == technicianID {
		return nil
	}
	return ErrPermissionDenied
}

func parseYearMonth(yearMonth string) (int, time.Month, error) {
	parsed, err := time.Parse("2006-01", yearMonth)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: month must be YYYY-MM", ErrInvalidInput)
	}
	return parsed.Year(), parsed.Month(), nil
}
