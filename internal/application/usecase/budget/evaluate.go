package budget

import (
	"context"

	"github.com/finanzas-pareja/ledger/internal/application/adapter"
	"github.com/finanzas-pareja/ledger/internal/domain/entity"
	domainerror "github.com/finanzas-pareja/ledger/internal/domain/error"
)

// evaluate sums the budget's expense movements over its window and derives the status.
func evaluate(ctx context.Context, movementRepo adapter.MovementRepository, budget *entity.Budget, category *entity.Category) (*entity.BudgetWithStatus, error) {
	current, err := movementRepo.GetCategorySpending(ctx, budget.UserID, budget.CategoryID, budget.StartDate, budget.EndDate)
	if err != nil {
		return nil, domainerror.NewStorageError("sum budget spending", err)
	}

	return &entity.BudgetWithStatus{
		Budget:   budget,
		Category: category,
		Status:   budget.Evaluate(current),
	}, nil
}
