package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/deepakk/fieldcare/internal/model"
)

type AttendanceRepository struct {
	db *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

const attendanceColumns = `
	id,
	technician_id,
	day AS date,
	check_in_time,
	check_out_time,
	working_hours,
	status,
	created_at
`

func (r *AttendanceRepository) GetRecord(ctx context.Context, technicianID uuid.UUID, day time.Time) (*model.AttendanceRecord, error) {
	var record model.AttendanceRecord
	err := r.db.WithContext(ctx).Raw(`
		SELECT `+attendanceColumns+`
		FROM attendance
		WHERE technician_id = ? AND day = ?
		LIMIT 1
	`, technicianID, day).Scan(&record).Error
	if err != nil {
		return nil, err
	}
	if record.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &record, nil
}

func (r *AttendanceRepository) CreateRecord(ctx context.Context, record model.AttendanceRecord) (*model.AttendanceRecord, error) {
	var saved model.AttendanceRecord
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO attendance (
			technician_id, day, check_in_time, check_out_time, working_hours, status
		) VALUES (?, ?, ?, ?, ?, ?)
		RETURNING `+attendanceColumns+`
	`,
		record.TechnicianID,
		record.Date,
		record.CheckInTime,
		record.CheckOutTime,
		record.WorkingHours,
		record.Status,
	).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *AttendanceRepository) UpdateRecord(ctx context.Context, record *model.AttendanceRecord) error {
	return r.db.WithContext(ctx).Exec(`
		UPDATE attendance
		SET
			check_in_time = ?,
			check_out_time = ?,
			working_hours = ?,
			status = ?
		WHERE id = ?
	`,
		record.CheckInTime,
		record.CheckOutTime,
		record.WorkingHours,
		record.Status,
		record.ID,
	).Error
}

func (r *AttendanceRepository) ListMonth(ctx context.Context, technicianID uuid.UUID, year int, month time.Month) ([]model.AttendanceRecord, error) {
	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	nextMonth := monthStart.AddDate(0, 1, 0)

	var records []model.AttendanceRecord
	err := r.db.WithContext(ctx).Raw(`
		SELECT `+attendanceColumns+`
		FROM attendance
		WHERE technician_id = ? AND day >= ? AND day < ?
		ORDER BY day ASC
	`, technicianID, monthStart, nextMonth).Scan(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *AttendanceRepository) GetTechnician(ctx context.Context, id uuid.UUID) (*model.Technician, error) {
	var technician model.Technician
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, full_name, phone, is_active
		FROM technicians
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&technician).Error
	if err != nil {
		return nil, err
	}
	if technician.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &technician, nil
}

func (r *AttendanceRepository) GetSalaryStructure(ctx context.Context, technicianID uuid.UUID) (*model.SalaryStructure, error) {
	var row struct {
		ID                 uuid.UUID
		MonthlySalary      float64
		PerDaySalary       float64
		OvertimeRate       float64
		ExpectedDailyHours float64
		SalaryUpdatedAt    *time.Time
	}
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, monthly_salary, per_day_salary, overtime_rate, expected_daily_hours, salary_updated_at
		FROM technicians
		WHERE id = ?
		LIMIT 1
	`, technicianID).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}

	structure := &model.SalaryStructure{
		TechnicianID:       row.ID,
		MonthlySalary:      row.MonthlySalary,
		PerDaySalary:       row.PerDaySalary,
		OvertimeRate:       row.OvertimeRate,
		ExpectedDailyHours: row.ExpectedDailyHours,
	}
	if row.SalaryUpdatedAt != nil {
		structure.UpdatedAt = *row.SalaryUpdatedAt
	}
	return structure, nil
}

func (r *AttendanceRepository) SaveSalaryStructure(ctx context.Context, structure model.SalaryStructure) error {
	return r.db.WithContext(ctx).Exec(`
		UPDATE technicians
		SET
			monthly_salary = ?,
			per_day_salary = ?,
			overtime_rate = ?,
			expected_daily_hours = ?,
			salary_updated_at = ?
		WHERE id = ?
	`,
		structure.MonthlySalary,
		structure.PerDaySalary,
		structure.OvertimeRate,
		structure.ExpectedDailyHours,
		structure.UpdatedAt,
		structure.TechnicianID,
	).Error
}

// SaveSalaryStatement stores a settled month. Recalculating a month replaces
// the previous statement, so the record always reflects the latest attendance
// data.
func (r *AttendanceRepository) SaveSalaryStatement(ctx context.Context, technicianID uuid.UUID, statement model.SalaryStatement) error {
	payload, err := json.Marshal(statement)
	if err != nil {
		return fmt.Errorf("marshal statement: %w", err)
	}

	return r.db.WithContext(ctx).Exec(`
		INSERT INTO salary_records (technician_id, month, statement, net_salary, calculated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (technician_id, month) DO UPDATE
		SET statement = EXCLUDED.statement,
			net_salary = EXCLUDED.net_salary,
			calculated_at = EXCLUDED.calculated_at
	`, technicianID, statement.Month, payload, statement.NetSalary, statement.CalculatedAt).Error
}

func (r *AttendanceRepository) ListSalaryStatements(ctx context.Context, technicianID uuid.UUID, limit int) ([]model.SalaryStatement, error) {
	if limit <= 0 {
		limit = 12
	}

	var rows []struct {
		Statement []byte
	}
	err := r.db.WithContext(ctx).Raw(`
		SELECT statement
		FROM salary_records
		WHERE technician_id = ?
		ORDER BY month DESC
		LIMIT ?
	`, technicianID, limit).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	statements := make([]model.SalaryStatement, 0, len(rows))
	for _, row := range rows {
		var statement model.SalaryStatement
		if err := json.Unmarshal(row.Statement, &statement); err != nil {
			return nil, fmt.Errorf("unmarshal statement: %w", err)
		}
		statements = append(statements, statement)
	}
	return statements, nil
}
