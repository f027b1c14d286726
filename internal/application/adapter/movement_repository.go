// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finanzas-pareja/ledger/internal/domain/entity"
)

// MovementFilter defines filter options for listing movements.
type MovementFilter struct {
	UserID           uuid.UUID
	StartDate        *time.Time
	EndDate          *time.Time
	Type             *entity.MovementType
	CategoryID       *uuid.UUID
	CategoryName     string
	MinAmount        *decimal.Decimal
	MaxAmount        *decimal.Decimal
	IncludeRecurring bool
	Limit            int // Most recent N; 0 returns everything
}

// MovementTotals represents aggregated totals of one-time movements.
type MovementTotals struct {
	IncomeTotal  decimal.Decimal
	ExpenseTotal decimal.Decimal
}

// MovementRepository defines the interface for movement persistence operations.
type MovementRepository interface {
	// CreateWithCategory resolves the (owner, name, type) category with find-or-create,
	// assigns it to the movement and inserts the movement, all in one database transaction.
	CreateWithCategory(ctx context.Context, movement *entity.Movement, categoryName string) (*entity.Category, error)

	// UpdateWithCategory re-resolves the category by name and saves the movement in one transaction.
	UpdateWithCategory(ctx context.Context, movement *entity.Movement, categoryName string) (*entity.Category, error)

	// FindByID retrieves a movement owned by userID.
	FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Movement, error)

	// FindByFilter retrieves movements with their categories, newest first.
	FindByFilter(ctx context.Context, filter MovementFilter) ([]*entity.MovementWithCategory, error)

	// Delete soft-deletes a movement.
	Delete(ctx context.Context, id uuid.UUID) error

	// GetTotals sums one-time income and expense movements of a user within [startDate, endDate].
	GetTotals(ctx context.Context, userID uuid.UUID, startDate, endDate time.Time) (*MovementTotals, error)

	// GetCategoryTotals sums one-time movements of the given type per category within [startDate, endDate],
	// ordered by total descending.
	GetCategoryTotals(ctx context.Context, userID uuid.UUID, movementType entity.MovementType, startDate, endDate time.Time) ([]*entity.CategoryTotal, error)

	// GetCategorySpending sums one-time expense movements of a category within [startDate, endDate].
	GetCategorySpending(ctx context.Context, userID, categoryID uuid.UUID, startDate, endDate time.Time) (decimal.Decimal, error)

	// FindPendingRecurring retrieves pending recurring templates that have not expired on asOf,
	// ordered by scheduled date ascending.
	FindPendingRecurring(ctx context.Context, userID uuid.UUID, asOf time.Time) ([]*entity.MovementWithCategory, error)

	// ApproveRecurring marks a pending template approved and inserts its one-time occurrence
	// dated occurrenceDate, in one database transaction. Returns ErrRecurringNotPending
	// when no pending template with that id belongs to userID.
	ApproveRecurring(ctx context.Context, id, userID uuid.UUID, occurrenceDate time.Time) (*entity.Movement, error)

	// MarkReminded records that a reminder listing the given templates was queued on day.
	MarkReminded(ctx context.Context, ids []uuid.UUID, day time.Time) error

	// RejectRecurring marks a pending template rejected, or deletes it when hard is set.
	// Returns ErrRecurringNotPending when no pending template with that id belongs to userID.
	RejectRecurring(ctx context.Context, id, userID uuid.UUID, hard bool) error
}
