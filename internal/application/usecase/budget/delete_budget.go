package budget

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/finanzas-pareja/ledger/internal/application/adapter"
	domainerror "github.com/finanzas-pareja/ledger/internal/domain/error"
)

// DeleteBudgetInput represents the input for budget deletion.
type DeleteBudgetInput struct {
	BudgetID uuid.UUID
	UserID   uuid.UUID
}

// DeleteBudgetUseCase handles budget deletion logic.
type DeleteBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewDeleteBudgetUseCase creates a new DeleteBudgetUseCase instance.
func NewDeleteBudgetUseCase(budgetRepo adapter.BudgetRepository) *DeleteBudgetUseCase {
	return &DeleteBudgetUseCase{
		budgetRepo: budgetRepo,
	}
}

// Execute soft-deletes a budget owned by the user.
func (uc *DeleteBudgetUseCase) Execute(ctx context.Context, input DeleteBudgetInput) error {
	if _, err := uc.budgetRepo.FindByID(ctx, input.BudgetID, input.UserID); err != nil {
		if errors.Is(err, domainerror.ErrBudgetNotFound) {
			return budgetNotFound()
		}
		return domainerror.NewStorageError("find budget", err)
	}

	if err := uc.budgetRepo.Delete(ctx, input.BudgetID); err != nil {
		return domainerror.NewStorageError("delete budget", err)
	}
	return nil
}
