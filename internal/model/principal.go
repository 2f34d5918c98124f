package model

import "github.com/google/uuid"

type Principal struct {
	UserID       uuid.UUID
	TechnicianID uuid.UUID
	Role         string // "ADMIN" or "TECHNICIAN"
}

func (p Principal) IsAdmin() bool {
	return p.Role == "ADMIN"
}

func (p Principal) IsTechnician() bool {
	return p.Role == "TECHNICIAN"
}
