// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finanzas-pareja/ledger/internal/domain/entity"
)

// BudgetRepository defines the interface for budget persistence operations.
type BudgetRepository interface {
	// Create creates a new budget in the database.
	Create(ctx context.Context, budget *entity.Budget) error

	// FindByID retrieves a budget owned by userID.
	FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Budget, error)

	// FindByUserID retrieves all budgets of a user, newest first.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Budget, error)

	// Update saves the cap, category, period and window of a budget owned by its user.
	// Returns ErrBudgetNotFound when no such budget exists.
	Update(ctx context.Context, budget *entity.Budget) error

	// Delete removes a budget from the database (soft delete).
	Delete(ctx context.Context, id uuid.UUID) error
}
