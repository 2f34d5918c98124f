package amc

import (
	"errors"
	"fmt"
	"time"

	"github.com/deepakk/fieldcare/internal/model"
)

// The lifecycle engine is pure: every function takes a contract and a date and
// returns a new contract value. Nothing here touches storage; the service
// layer owns read-modify-write against the database and is the single writer
// for a given contract.

var ErrInvalidContract = errors.New("invalid contract")

const (
	DefaultIntervalMonths = 3
	DefaultTotalServices  = 4

	// renewal reminders start this many days before the contract end date
	renewalWindowDays = 30
)

// Renewal reminder reasons, in priority order. Only the first matching
// condition is ever reported.
const (
	ReasonExpired           = "expired"
	ReasonServicesExhausted = "all services completed"
	ReasonExpiringSoon      = "expiring soon"
)

type RenewalReminder struct {
	ShouldShow bool
	DaysLeft   int
	Reason     string
}

type ValidationResult struct {
	Valid    bool
	Errors   []string
	Warnings []string
}

type StatusSummary struct {
	IsActive          bool
	StartDate         time.Time
	EndDate           time.Time
	DaysUntilExpiry   int
	IsExpired         bool
	ServicesCompleted int
	TotalServices     int
	ServicesRemaining int
	LastServiceDate   *time.Time
	NextServiceDate   *time.Time
	ReminderDue       bool
	RenewalNeeded     bool
	RenewalReason     string
}

// NextServiceDate derives the next due date from the last completed service.
// No last service means no cadence yet, so nil in, nil out.
func NextServiceDate(lastServiceDate *time.Time, intervalMonths int) *time.Time {
	if lastServiceDate == nil {
		return nil
	}
	if intervalMonths <= 0 {
		intervalMonths = DefaultIntervalMonths
	}
	next := AddMonths(*lastServiceDate, intervalMonths)
	return &next
}

// ProcessServiceCompletion records one completed visit: the counter goes up,
// the cadence restarts from the completion date. EndDate is never touched —
// the contract term is fixed regardless of how services drift.
func ProcessServiceCompletion(contract *model.Contract, completionDate time.Time) (*model.Contract, error) {
	if contract == nil {
		return nil, ErrInvalidContract
	}

	updated := *contract
	completion := dateOnly(completionDate)

	updated.ServicesCompleted = contract.ServicesCompleted + 1
	updated.LastServiceDate = &completion
	updated.NextServiceDate = NextServiceDate(&completion, contract.IntervalMonths)

	return &updated, nil
}

// ProcessEarlyCompletion is a service completion that may pre-empt an already
// scheduled visit. The returned flag reports whether the completion came
// before the scheduled date; recomputing NextServiceDate is itself the
// cancellation of the old reminder, there is no separate pending state.
func ProcessEarlyCompletion(contract *model.Contract, completionDate, scheduledDate time.Time) (*model.Contract, bool, error) {
	updated, err := ProcessServiceCompletion(contract, completionDate)
	if err != nil {
		return nil, false, err
	}
	early := dateOnly(completionDate).Before(dateOnly(scheduledDate))
	return updated, early, nil
}

// ShouldShowServiceReminder reports whether a service-due reminder applies.
// All four conditions must hold; a missing precondition is a quiet false,
// not an error.
func ShouldShowServiceReminder(contract *model.Contract, today time.Time) bool {
	if contract == nil {
		return false
	}
	if !contract.IsActive {
		return false
	}
	if contract.NextServiceDate == nil {
		return false
	}

	day := dateOnly(today)
	if day.Before(dateOnly(*contract.NextServiceDate)) {
		return false
	}
	// past the contract term the renewal reminder takes over
	if day.After(dateOnly(contract.EndDate)) {
		return false
	}
	return true
}

// ShouldShowRenewalReminder evaluates renewal conditions in priority order:
// expired, services exhausted, expiring within the renewal window.
func ShouldShowRenewalReminder(contract *model.Contract, today time.Time) RenewalReminder {
	if contract == nil {
		return RenewalReminder{}
	}

	day := dateOnly(today)
	end := dateOnly(contract.EndDate)
	daysUntilExpiry := daysBetween(day, end)

	if day.After(end) {
		return RenewalReminder{
			ShouldShow: true,
			DaysLeft:   daysUntilExpiry, // negative: days overdue
			Reason:     ReasonExpired,
		}
	}

	if contract.ServicesCompleted >= contract.TotalServices {
		return RenewalReminder{
			ShouldShow: true,
			DaysLeft:   daysUntilExpiry,
			Reason:     ReasonServicesExhausted,
		}
	}

	if daysUntilExpiry <= renewalWindowDays {
		return RenewalReminder{
			ShouldShow: true,
			DaysLeft:   daysUntilExpiry,
			Reason:     ReasonExpiringSoon,
		}
	}

	return RenewalReminder{}
}

// CheckAndDeactivate flips IsActive off once the contract is exhausted or its
// end date has passed. Idempotent: an already inactive contract comes back
// unchanged. Reactivation does not exist — renewal creates a new contract.
func CheckAndDeactivate(contract *model.Contract, today time.Time) *model.Contract {
	if contract == nil {
		return nil
	}

	updated := *contract

	exhausted := updated.ServicesCompleted >= updated.TotalServices
	expired := dateOnly(today).After(dateOnly(updated.EndDate))
	if exhausted || expired {
		updated.IsActive = false
	}

	return &updated
}

// Validate checks structural integrity without mutating anything. Errors
// block processing; warnings only flag upstream data drift (the store may
// hold contracts written by older clients).
func Validate(contract *model.Contract) ValidationResult {
	var errs, warnings []string

	if contract == nil {
		return ValidationResult{Errors: []string{"contract is nil"}}
	}

	if contract.StartDate.IsZero() {
		errs = append(errs, "missing required field: startDate")
	}
	if contract.EndDate.IsZero() {
		errs = append(errs, "missing required field: endDate")
	}
	if contract.IntervalMonths <= 0 {
		errs = append(errs, "missing required field: intervalMonths")
	}
	if contract.TotalServices <= 0 {
		errs = append(errs, "missing required field: totalServices")
	}

	if !contract.StartDate.IsZero() && !contract.EndDate.IsZero() {
		if dateOnly(contract.StartDate).After(dateOnly(contract.EndDate)) {
			errs = append(errs, "start date cannot be after end date")
		}
	}

	if contract.ServicesCompleted > contract.TotalServices {
		warnings = append(warnings, fmt.Sprintf(
			"more services completed (%d) than total (%d)",
			contract.ServicesCompleted, contract.TotalServices))
	}
	if contract.LastServiceDate != nil && contract.NextServiceDate != nil {
		if !dateOnly(*contract.NextServiceDate).After(dateOnly(*contract.LastServiceDate)) {
			warnings = append(warnings, "next service date should be after last service date")
		}
	}

	return ValidationResult{
		Valid:    len(errs) == 0,
		Errors:   errs,
		Warnings: warnings,
	}
}

// Status assembles the full contract position for a given day.
func Status(contract *model.Contract, today time.Time) *StatusSummary {
	if contract == nil {
		return nil
	}

	day := dateOnly(today)
	renewal := ShouldShowRenewalReminder(contract, day)

	return &StatusSummary{
		IsActive:          contract.IsActive,
		StartDate:         contract.StartDate,
		EndDate:           contract.EndDate,
		DaysUntilExpiry:   daysBetween(day, contract.EndDate),
		IsExpired:         day.After(dateOnly(contract.EndDate)),
		ServicesCompleted: contract.ServicesCompleted,
		TotalServices:     contract.TotalServices,
		ServicesRemaining: contract.TotalServices - contract.ServicesCompleted,
		LastServiceDate:   contract.LastServiceDate,
		NextServiceDate:   contract.NextServiceDate,
		ReminderDue:       ShouldShowServiceReminder(contract, day),
		RenewalNeeded:     renewal.ShouldShow,
		RenewalReason:     renewal.Reason,
	}
}

// ScheduleVisits lays out the planned visit dates for a fresh contract cycle:
// one visit per interval, the last one landing at the end of the term.
func ScheduleVisits(startDate time.Time, intervalMonths, totalServices int) []time.Time {
	if intervalMonths <= 0 {
		intervalMonths = DefaultIntervalMonths
	}
	if totalServices <= 0 {
		totalServices = DefaultTotalServices
	}

	dates := make([]time.Time, 0, totalServices)
	for i := 1; i <= totalServices; i++ {
		dates = append(dates, AddMonths(startDate, i*intervalMonths))
	}
	return dates
}
