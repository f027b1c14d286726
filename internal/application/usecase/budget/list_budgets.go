package budget

import (
	"context"

	"github.com/google/uuid"

	"github.com/finanzas-pareja/ledger/internal/application/adapter"
	"github.com/finanzas-pareja/ledger/internal/domain/entity"
	domainerror "github.com/finanzas-pareja/ledger/internal/domain/error"
)

// ListBudgetsInput represents the input for listing budgets.
type ListBudgetsInput struct {
	UserID uuid.UUID
}

// ListBudgetsOutput represents every budget of a user with its evaluation.
type ListBudgetsOutput struct {
	Budgets []*entity.BudgetWithStatus
}

// ListBudgetsUseCase handles listing budgets logic.
type ListBudgetsUseCase struct {
	budgetRepo   adapter.BudgetRepository
	categoryRepo adapter.CategoryRepository
	movementRepo adapter.MovementRepository
}

// NewListBudgetsUseCase creates a new ListBudgetsUseCase instance.
func NewListBudgetsUseCase(
	budgetRepo adapter.BudgetRepository,
	categoryRepo adapter.CategoryRepository,
	movementRepo adapter.MovementRepository,
) *ListBudgetsUseCase {
	return &ListBudgetsUseCase{
		budgetRepo:   budgetRepo,
		categoryRepo: categoryRepo,
		movementRepo: movementRepo,
	}
}

// Execute evaluates each budget of the user.
func (uc *ListBudgetsUseCase) Execute(ctx context.Context, input ListBudgetsInput) (*ListBudgetsOutput, error) {
	budgets, err := uc.budgetRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, domainerror.NewStorageError("list budgets", err)
	}

	categories := make(map[uuid.UUID]*entity.Category)
	output := &ListBudgetsOutput{
		Budgets: make([]*entity.BudgetWithStatus, 0, len(budgets)),
	}

	for _, b := range budgets {
		category, ok := categories[b.CategoryID]
		if !ok {
			category, err = uc.categoryRepo.FindByID(ctx, b.CategoryID)
			if err != nil {
				return nil, domainerror.NewStorageError("find budget category", err)
			}
			categories[b.CategoryID] = category
		}

		evaluated, err := evaluate(ctx, uc.movementRepo, b, category)
		if err != nil {
			return nil, err
		}
		output.Budgets = append(output.Budgets, evaluated)
	}

	return output, nil
}
