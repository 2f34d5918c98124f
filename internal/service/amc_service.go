package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/deepakk/fieldcare/internal/amc"
	"github.com/deepakk/fieldcare/internal/config"
	"github.com/deepakk/fieldcare/internal/model"
)

// ContractStore is what the AMC workflow needs from persistence. The gorm
// repository satisfies it; tests mock it.
type ContractStore interface {
	GetContract(ctx context.Context, id uuid.UUID) (*model.Contract, error)
	ListActiveContracts(ctx context.Context) ([]model.Contract, error)
	CreateContract(ctx context.Context, contract model.Contract) (*model.Contract, error)
	UpdateContract(ctx context.Context, contract *model.Contract) error
	CreateVisits(ctx context.Context, visits []model.ServiceVisit) error
	NextPendingVisit(ctx context.Context, contractID uuid.UUID) (*model.ServiceVisit, error)
	CompleteVisit(ctx context.Context, visitID uuid.UUID, completedDate time.Time, technicianID *uuid.UUID) error
	CancelPendingVisits(ctx context.Context, contractID uuid.UUID) error
}

// AMCService drives the contract lifecycle: it loads a contract, runs the
// pure engine, and persists the result. It is the single writer for a
// contract within one call; concurrent completion of the same service is the
// caller's problem to serialize (one admin screen, one technician app flow).
type AMCService struct {
	contracts ContractStore
	cfg       *config.Config
	log       zerolog.Logger
}

func NewAMCService(contracts ContractStore, cfg *config.Config, log zerolog.Logger) *AMCService {
	return &AMCService{contracts: contracts, cfg: cfg, log: log}
}

type CompleteServiceInput struct {
	ContractID     uuid.UUID
	CompletionDate time.Time
	TechnicianID   *uuid.UUID
	Principal      model.Principal
}

type CompleteServiceResult struct {
	Contract *model.Contract
	Early    bool
	Warnings []string
}

func (s *AMCService) CompleteService(ctx context.Context, input CompleteServiceInput) (*CompleteServiceResult, error) {
	if input.ContractID == uuid.Nil {
		return nil, fmt.Errorf("%w: contract_id is required", ErrInvalidInput)
	}
	if input.CompletionDate.IsZero() {
		return nil, fmt.Errorf("%w: completion_date is required", ErrInvalidInput)
	}

	contract, err := s.contracts.GetContract(ctx, input.ContractID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	validation := amc.Validate(contract)
	if !validation.Valid {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(validation.Errors, "; "))
	}
	if !contract.IsActive {
		return nil, fmt.Errorf("%w: contract is inactive, renew it first", ErrConflict)
	}

	// an open planned visit tells us whether this completion pre-empts a schedule
	var pendingVisit *model.ServiceVisit
	pendingVisit, err = s.contracts.NextPendingVisit(ctx, input.ContractID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var updated *model.Contract
	var early bool
	if pendingVisit != nil {
		updated, early, err = amc.ProcessEarlyCompletion(contract, input.CompletionDate, pendingVisit.ScheduledDate)
	} else {
		updated, err = amc.ProcessServiceCompletion(contract, input.CompletionDate)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	updated = amc.CheckAndDeactivate(updated, input.CompletionDate)

	warnings := amc.Validate(updated).Warnings
	for _, warning := range warnings {
		s.log.Warn().
			Str("contract_id", contract.ID.String()).
			Str("warning", warning).
			Msg("contract state warning after completion")
	}

	if err := s.contracts.UpdateContract(ctx, updated); err != nil {
		return nil, err
	}
	if pendingVisit != nil {
		if err := s.contracts.CompleteVisit(ctx, pendingVisit.ID, input.CompletionDate, input.TechnicianID); err != nil {
			return nil, err
		}
	}

	if early {
		s.log.Info().
			Str("contract_id", contract.ID.String()).
			Time("scheduled", pendingVisit.ScheduledDate).
			Time("completed", input.CompletionDate).
			Msg("service completed early, cadence restarted from completion date")
	}

	return &CompleteServiceResult{Contract: updated, Early: early, Warnings: warnings}, nil
}

type RenewInput struct {
	ContractID     uuid.UUID
	StartDate      time.Time
	DurationMonths int
	Amount         float64
	PaidAmount     float64
	Principal      model.Principal
}

// Renew closes the old contract and opens a fresh cycle. The engine's state
// machine has no reactivation: a renewal is always a new contract with reset
// counters, plus a freshly planned visit schedule.
func (s *AMCService) Renew(ctx context.Context, input RenewInput) (*model.Contract, error) {
	if !input.Principal.IsAdmin() {
		return nil, ErrPermissionDenied
	}
	if input.StartDate.IsZero() {
		return nil, fmt.Errorf("%w: start_date is required", ErrInvalidInput)
	}
	if input.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount is required", ErrInvalidInput)
	}

	previous, err := s.contracts.GetContract(ctx, input.ContractID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	duration := input.DurationMonths
	if duration <= 0 {
		duration = s.cfg.AMC.DurationMonths
	}

	if previous.IsActive {
		previous.IsActive = false
		if err := s.contracts.UpdateContract(ctx, previous); err != nil {
			return nil, err
		}
	}
	if err := s.contracts.CancelPendingVisits(ctx, previous.ID); err != nil {
		return nil, err
	}

	created, err := s.contracts.CreateContract(ctx, model.Contract{
		CustomerID:     previous.CustomerID,
		CustomerName:   previous.CustomerName,
		CustomerPhone:  previous.CustomerPhone,
		StartDate:      input.StartDate,
		EndDate:        amc.AddMonths(input.StartDate, duration),
		IntervalMonths: s.cfg.AMC.IntervalMonths,
		TotalServices:  s.cfg.AMC.TotalServices,
		IsActive:       true,
		Amount:         input.Amount,
		PaidAmount:     input.PaidAmount,
	})
	if err != nil {
		return nil, err
	}

	dates := amc.ScheduleVisits(input.StartDate, created.IntervalMonths, created.TotalServices)
	visits := make([]model.ServiceVisit, 0, len(dates))
	for i, scheduled := range dates {
		visits = append(visits, model.ServiceVisit{
			ContractID:    created.ID,
			SequenceNo:    i + 1,
			Label:         visitLabel(i+1, len(dates)),
			ScheduledDate: scheduled,
			Status:        model.VisitStatusPending,
		})
	}
	if err := s.contracts.CreateVisits(ctx, visits); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("old_contract_id", previous.ID.String()).
		Str("new_contract_id", created.ID.String()).
		Time("start", input.StartDate).
		Msg("contract renewed")
	return created, nil
}

type ReminderType string

const (
	ReminderTypeServiceDue ReminderType = "SERVICE_DUE"
	ReminderTypeRenewal    ReminderType = "RENEWAL"
)

type Reminder struct {
	ContractID      uuid.UUID
	CustomerID      uuid.UUID
	CustomerName    string
	CustomerPhone   string
	Type            ReminderType
	NextServiceDate *time.Time
	DaysLeft        int
	Reason          string
}

// Reminders walks the active contracts and reports everything due on the
// given day: services waiting on a visit and contracts that need renewal.
func (s *AMCService) Reminders(ctx context.Context, today time.Time) ([]Reminder, error) {
	contracts, err := s.contracts.ListActiveContracts(ctx)
	if err != nil {
		return nil, err
	}

	var reminders []Reminder
	for i := range contracts {
		contract := &contracts[i]

		if amc.ShouldShowServiceReminder(contract, today) {
			reminders = append(reminders, Reminder{
				ContractID:      contract.ID,
				CustomerID:      contract.CustomerID,
				CustomerName:    contract.CustomerName,
				CustomerPhone:   contract.CustomerPhone,
				Type:            ReminderTypeServiceDue,
				NextServiceDate: contract.NextServiceDate,
			})
		}

		if renewal := amc.ShouldShowRenewalReminder(contract, today); renewal.ShouldShow {
			reminders = append(reminders, Reminder{
				ContractID:    contract.ID,
				CustomerID:    contract.CustomerID,
				CustomerName:  contract.CustomerName,
				CustomerPhone: contract.CustomerPhone,
				Type:          ReminderTypeRenewal,
				DaysLeft:      renewal.DaysLeft,
				Reason:        renewal.Reason,
			})
		}
	}
	return reminders, nil
}

// DeactivationSweep applies the deactivation rule across all active
// contracts and persists the ones that flipped. Safe to run on a schedule:
// the rule is idempotent.
func (s *AMCService) DeactivationSweep(ctx context.Context, today time.Time) (int, error) {
	contracts, err := s.contracts.ListActiveContracts(ctx)
	if err != nil {
		return 0, err
	}

	deactivated := 0
	for i := range contracts {
		updated := amc.CheckAndDeactivate(&contracts[i], today)
		if updated.IsActive == contracts[i].IsActive {
			continue
		}
		if err := s.contracts.UpdateContract(ctx, updated); err != nil {
			return deactivated, err
		}
		deactivated++
		s.log.Info().
			Str("contract_id", updated.ID.String()).
			Int("services_completed", updated.ServicesCompleted).
			Time("end_date", updated.EndDate).
			Msg("contract deactivated")
	}
	return deactivated, nil
}

func (s *AMCService) ContractStatus(ctx context.Context, id uuid.UUID, today time.Time) (*amc.StatusSummary, error) {
	contract, err := s.contracts.GetContract(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return amc.Status(contract, today), nil
}

func visitLabel(sequence, total int) string {
	label := fmt.Sprintf("%s Service", ordinal(sequence))
	if sequence == total {
		label += " (Renewal)"
	}
	return label
}

func ordinal(n int) string {
	switch n % 10 {
	case 1:
		if n%100 != 11 {
			return fmt.Sprintf("%dst", n)
		}
	case 2:
		if n%100 != 12 {
			return fmt.Sprintf("%dnd", n)
		}
	case 3:
		if n%100 != 13 {
			return fmt.Sprintf("%drd", n)
		}
	}
	return fmt.Sprintf("%dth", n)
}
