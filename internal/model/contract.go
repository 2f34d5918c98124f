package model

import (
	"time"

	"github.com/google/uuid"
)

// Contract is an annual maintenance contract (AMC). StartDate and EndDate are
// fixed at creation; completing a service only shifts the service cadence
// (LastServiceDate/NextServiceDate), never the contract term. Contracts are
// deactivated, never deleted.
type Contract struct {
	ID                uuid.UUID
	CustomerID        uuid.UUID
	CustomerName      string
	CustomerPhone     string
	StartDate         time.Time
	EndDate           time.Time
	IntervalMonths    int
	TotalServices     int
	ServicesCompleted int
	LastServiceDate   *time.Time
	NextServiceDate   *time.Time
	IsActive          bool
	Amount            float64
	PaidAmount        float64
	CreatedAt         time.Time
}

type VisitStatus string

const (
	VisitStatusPending   VisitStatus = "PENDING"
	VisitStatusCompleted VisitStatus = "COMPLETED"
	VisitStatusCancelled VisitStatus = "CANCELLED"
)

// ServiceVisit is one planned or completed maintenance visit under a contract.
type ServiceVisit struct {
	ID            uuid.UUID
	ContractID    uuid.UUID
	SequenceNo    int // 1-based position within the contract cycle
	Label         string
	ScheduledDate time.Time
	CompletedDate *time.Time
	TechnicianID  *uuid.UUID
	Status        VisitStatus
	CreatedAt     time.Time
}
