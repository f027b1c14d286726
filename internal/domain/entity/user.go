// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents a ledger owner. Users are never hard-deleted.
type User struct {
	ID                 uuid.UUID
	Email              string
	Name               string
	PasswordHash       string
	RecurringReminders bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// NewUser creates a new User with default values.
func NewUser(email, name, passwordHash string) *User {
	now := time.Now().UTC()
	return &User{
		ID:                 uuid.New(),
		Email:              email,
		Name:               name,
		PasswordHash:       passwordHash,
		RecurringReminders: true,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}
