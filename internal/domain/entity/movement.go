// Package entity defines the core business entities for the domain layer.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MovementType represents the direction of a movement (income or expense).
// Categories share the same tag.
type MovementType string

const (
	MovementTypeIncome  MovementType = "income"
	MovementTypeExpense MovementType = "expense"
)

// ParseMovementType normalises a type tag. The Spanish tags "Ingreso" and
// "Gasto" are accepted as aliases.
func ParseMovementType(s string) (MovementType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "income", "ingreso":
		return MovementTypeIncome, true
	case "expense", "gasto":
		return MovementTypeExpense, true
	default:
		return "", false
	}
}

// Frequency is the declared repetition of a recurring movement.
// It is stored metadata; nothing expands it into future occurrences.
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyYearly  Frequency = "yearly"
)

// IsValid reports whether f is one of the known frequencies.
func (f Frequency) IsValid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyYearly:
		return true
	}
	return false
}

// RecurringStatus is the approval state of a recurring movement.
type RecurringStatus string

const (
	RecurringStatusPending  RecurringStatus = "pending"
	RecurringStatusApproved RecurringStatus = "approved"
	RecurringStatusRejected RecurringStatus = "rejected"
)

// Recurrence holds the recurring fields of a movement template.
type Recurrence struct {
	Frequency     Frequency
	ScheduledDate time.Time
	EndDate       *time.Time
}

// Movement is a single dated income or expense. A recurring movement is a
// template awaiting manual approval and never counts toward totals.
type Movement struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	CategoryID       uuid.UUID
	Date             time.Time
	Amount           decimal.Decimal // Always positive; Type carries the sign
	Type             MovementType
	Description      string
	IsRecurring      bool
	Frequency        *Frequency
	ScheduledDate    *time.Time
	EndDate          *time.Time
	Status           *RecurringStatus
	SourceMovementID *uuid.UUID // Recurring template this row was approved from
	RemindedOn       *time.Time // Day a reminder listing this template was queued
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        *time.Time
}

// NewMovement creates a one-time Movement entity.
func NewMovement(
	userID uuid.UUID,
	categoryID uuid.UUID,
	date time.Time,
	amount decimal.Decimal,
	movementType MovementType,
	description string,
) *Movement {
	now := time.Now().UTC()

	return &Movement{
		ID:          uuid.New(),
		UserID:      userID,
		CategoryID:  categoryID,
		Date:        date,
		Amount:      amount,
		Type:        movementType,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// NewRecurringMovement creates a pending recurring Movement template.
func NewRecurringMovement(
	userID uuid.UUID,
	categoryID uuid.UUID,
	date time.Time,
	amount decimal.Decimal,
	movementType MovementType,
	description string,
	recurrence Recurrence,
) *Movement {
	m := NewMovement(userID, categoryID, date, amount, movementType, description)

	frequency := recurrence.Frequency
	scheduled := recurrence.ScheduledDate
	status := RecurringStatusPending

	m.IsRecurring = true
	m.Frequency = &frequency
	m.ScheduledDate = &scheduled
	m.EndDate = recurrence.EndDate
	m.Status = &status
	return m
}

// IsPending reports whether m is a recurring template still awaiting a decision.
func (m *Movement) IsPending() bool {
	return m.IsRecurring && m.Status != nil && *m.Status == RecurringStatusPending
}

// Materialize builds the one-time movement produced by approving m on the given date.
func (m *Movement) Materialize(date time.Time) *Movement {
	occurrence := NewMovement(m.UserID, m.CategoryID, date, m.Amount, m.Type, m.Description)
	sourceID := m.ID
	occurrence.SourceMovementID = &sourceID
	return occurrence
}

// MovementWithCategory represents a movement with its associated category.
type MovementWithCategory struct {
	Movement *Movement
	Category *Category
}

// LedgerSummary holds the totals of one-time movements over a window.
type LedgerSummary struct {
	StartDate    time.Time
	EndDate      time.Time
	IncomeTotal  decimal.Decimal
	ExpenseTotal decimal.Decimal
	Balance      decimal.Decimal
}

// CategoryTotal is the summed amount of one category over a window.
type CategoryTotal struct {
	CategoryID   uuid.UUID
	CategoryName string
	Total        decimal.Decimal
	Count        int
}
