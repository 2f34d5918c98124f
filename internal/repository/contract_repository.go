package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/deepakk/fieldcare/internal/model"
)

type ContractRepository struct {
	db *gorm.DB
}

func NewContractRepository(db *gorm.DB) *ContractRepository {
	return &ContractRepository{db: db}
}

const contractColumns = `
	id,
	customer_id,
	customer_name,
	customer_phone,
	start_date,
	end_date,
	interval_months,
	total_services,
	services_completed,
	last_service_date,
	next_service_date,
	is_active,
	amount,
	paid_amount,
	created_at
`

func (r *ContractRepository) GetContract(ctx context.Context, id uuid.UUID) (*model.Contract, error) {
	var contract model.Contract
	err := r.db.WithContext(ctx).Raw(`
		SELECT `+contractColumns+`
		FROM amc_contracts
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&contract).Error
	if err != nil {
		return nil, err
	}
	if contract.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &contract, nil
}

func (r *ContractRepository) ListActiveContracts(ctx context.Context) ([]model.Contract, error) {
	var contracts []model.Contract
	err := r.db.WithContext(ctx).Raw(`
		SELECT `+contractColumns+`
		FROM amc_contracts
		WHERE is_active = TRUE
		ORDER BY end_date ASC
	`).Scan(&contracts).Error
	if err != nil {
		return nil, err
	}
	return contracts, nil
}

func (r *ContractRepository) ListContractsByCustomer(ctx context.Context, customerID uuid.UUID) ([]model.Contract, error) {
	var contracts []model.Contract
	err := r.db.WithContext(ctx).Raw(`
		SELECT `+contractColumns+`
		FROM amc_contracts
		WHERE customer_id = ?
		ORDER BY created_at DESC
	`, customerID).Scan(&contracts).Error
	if err != nil {
		return nil, err
	}
	return contracts, nil
}

func (r *ContractRepository) CreateContract(ctx context.Context, contract model.Contract) (*model.Contract, error) {
	var saved model.Contract
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO amc_contracts (
			customer_id,
			customer_name,
			customer_phone,
			start_date,
			end_date,
			interval_months,
			total_services,
			services_completed,
			last_service_date,
			next_service_date,
			is_active,
			amount,
			paid_amount
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING `+contractColumns+`
	`,
		contract.CustomerID,
		contract.CustomerName,
		contract.CustomerPhone,
		contract.StartDate,
		contract.EndDate,
		contract.IntervalMonths,
		contract.TotalServices,
		contract.ServicesCompleted,
		contract.LastServiceDate,
		contract.NextServiceDate,
		contract.IsActive,
		contract.Amount,
		contract.PaidAmount,
	).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// UpdateContract persists the mutable part of a contract: the service cadence
// and the activation flag. Start and end dates are fixed at creation and
// deliberately not part of the statement.
func (r *ContractRepository) UpdateContract(ctx context.Context, contract *model.Contract) error {
	return r.db.WithContext(ctx).Exec(`
		UPDATE amc_contracts
		SET
			services_completed = ?,
			last_service_date = ?,
			next_service_date = ?,
			is_active = ?,
			paid_amount = ?
		WHERE id = ?
	`,
		contract.ServicesCompleted,
		contract.LastServiceDate,
		contract.NextServiceDate,
		contract.IsActive,
		contract.PaidAmount,
		contract.ID,
	).Error
}

const visitColumns = `
	id,
	contract_id,
	sequence_no,
	label,
	scheduled_date,
	completed_date,
	technician_id,
	status,
	created_at
`

func (r *ContractRepository) CreateVisits(ctx context.Context, visits []model.ServiceVisit) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, visit := range visits {
			err := tx.Exec(`
				INSERT INTO service_visits (
					contract_id, sequence_no, label, scheduled_date, status
				) VALUES (?, ?, ?, ?, ?)
			`, visit.ContractID, visit.SequenceNo, visit.Label, visit.ScheduledDate, visit.Status).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *ContractRepository) ListVisits(ctx context.Context, contractID uuid.UUID) ([]model.ServiceVisit, error) {
	var visits []model.ServiceVisit
	err := r.db.WithContext(ctx).Raw(`
		SELECT `+visitColumns+`
		FROM service_visits
		WHERE contract_id = ?
		ORDER BY sequence_no ASC
	`, contractID).Scan(&visits).Error
	if err != nil {
		return nil, err
	}
	return visits, nil
}

// NextPendingVisit returns the earliest planned visit still open for the
// contract, or gorm.ErrRecordNotFound when the cycle has none left.
func (r *ContractRepository) NextPendingVisit(ctx context.Context, contractID uuid.UUID) (*model.ServiceVisit, error) {
	var visit model.ServiceVisit
	err := r.db.WithContext(ctx).Raw(`
		SELECT `+visitColumns+`
		FROM service_visits
		WHERE contract_id = ? AND status = 'PENDING'
		ORDER BY scheduled_date ASC
		LIMIT 1
	`, contractID).Scan(&visit).Error
	if err != nil {
		return nil, err
	}
	if visit.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &visit, nil
}

func (r *ContractRepository) CompleteVisit(ctx context.Context, visitID uuid.UUID, completedDate time.Time, technicianID *uuid.UUID) error {
	return r.db.WithContext(ctx).Exec(`
		UPDATE service_visits
		SET status = 'COMPLETED', completed_date = ?, technician_id = ?
		WHERE id = ?
	`, completedDate, technicianID, visitID).Error
}

func (r *ContractRepository) CancelPendingVisits(ctx context.Context, contractID uuid.UUID) error {
	return r.db.WithContext(ctx).Exec(`
		UPDATE service_visits
		SET status = 'CANCELLED'
		WHERE contract_id = ? AND status = 'PENDING'
	`, contractID).Error
}
