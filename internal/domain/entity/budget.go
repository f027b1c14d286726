// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetPeriod represents the period tag of a budget.
type BudgetPeriod string

const (
	BudgetPeriodWeekly  BudgetPeriod = "weekly"
	BudgetPeriodMonthly BudgetPeriod = "monthly"
	BudgetPeriodYearly  BudgetPeriod = "yearly"
)

// IsValid reports whether p is one of the known periods.
func (p BudgetPeriod) IsValid() bool {
	return p == BudgetPeriodWeekly || p == BudgetPeriodMonthly || p == BudgetPeriodYearly
}

// Budget is a spending cap for one expense category over a dated window.
type Budget struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	CategoryID uuid.UUID
	MaxAmount  decimal.Decimal
	Period     BudgetPeriod
	StartDate  time.Time
	EndDate    time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  *time.Time
}

// NewBudget creates a new Budget entity.
func NewBudget(userID, categoryID uuid.UUID, maxAmount decimal.Decimal, period BudgetPeriod, startDate, endDate time.Time) *Budget {
	now := time.Now().UTC()

	return &Budget{
		ID:         uuid.New(),
		UserID:     userID,
		CategoryID: categoryID,
		MaxAmount:  maxAmount,
		Period:     period,
		StartDate:  startDate,
		EndDate:    endDate,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// BudgetStatus is the derived budget-vs-actual view of a budget.
type BudgetStatus struct {
	MaxAmount       decimal.Decimal
	CurrentAmount   decimal.Decimal
	RemainingAmount decimal.Decimal
	PercentageUsed  decimal.Decimal
	Exceeded        bool
}

var hundred = decimal.NewFromInt(100)

// Evaluate compares the budget cap against the actual spend.
// A zero cap yields a zero percentage instead of dividing by zero.
func (b *Budget) Evaluate(current decimal.Decimal) BudgetStatus {
	remaining := b.MaxAmount.Sub(current)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}

	percentage := decimal.Zero
	if b.MaxAmount.IsPositive() {
		percentage = current.Div(b.MaxAmount).Mul(hundred).Round(2)
	}

	return BudgetStatus{
		MaxAmount:       b.MaxAmount,
		CurrentAmount:   current,
		RemainingAmount: remaining,
		PercentageUsed:  percentage,
		Exceeded:        current.GreaterThan(b.MaxAmount),
	}
}

// BudgetWithStatus represents a budget, its category and its evaluation.
type BudgetWithStatus struct {
	Budget   *Budget
	Category *Category
	Status   BudgetStatus
}
