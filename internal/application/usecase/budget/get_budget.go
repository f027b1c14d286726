package budget

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/finanzas-pareja/ledger/internal/application/adapter"
	"github.com/finanzas-pareja/ledger/internal/domain/entity"
	domainerror "github.com/finanzas-pareja/ledger/internal/domain/error"
)

// GetBudgetInput represents the input for evaluating one budget.
type GetBudgetInput struct {
	BudgetID uuid.UUID
	UserID   uuid.UUID
}

// GetBudgetOutput represents a budget with its budget-vs-actual status.
type GetBudgetOutput struct {
	Budget *entity.BudgetWithStatus
}

// GetBudgetUseCase evaluates a budget against actual spending.
type GetBudgetUseCase struct {
	budgetRepo   adapter.BudgetRepository
	categoryRepo adapter.CategoryRepository
	movementRepo adapter.MovementRepository
}

// NewGetBudgetUseCase creates a new GetBudgetUseCase instance.
func NewGetBudgetUseCase(
	budgetRepo adapter.BudgetRepository,
	categoryRepo adapter.CategoryRepository,
	movementRepo adapter.MovementRepository,
) *GetBudgetUseCase {
	return &GetBudgetUseCase{
		budgetRepo:   budgetRepo,
		categoryRepo: categoryRepo,
		movementRepo: movementRepo,
	}
}

// Execute loads the budget and computes current, remaining, percentage and exceeded.
func (uc *GetBudgetUseCase) Execute(ctx context.Context, input GetBudgetInput) (*GetBudgetOutput, error) {
	budget, err := uc.budgetRepo.FindByID(ctx, input.BudgetID, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrBudgetNotFound) {
			return nil, budgetNotFound()
		}
		return nil, domainerror.NewStorageError("find budget", err)
	}

	category, err := uc.categoryRepo.FindByID(ctx, budget.CategoryID)
	if err != nil {
		return nil, domainerror.NewStorageError("find budget category", err)
	}

	evaluated, err := evaluate(ctx, uc.movementRepo, budget, category)
	if err != nil {
		return nil, err
	}

	return &GetBudgetOutput{
		Budget: evaluated,
	}, nil
}

func budgetNotFound() error {
	return domainerror.NewBudgetError(
		domainerror.ErrCodeBudgetNotFound,
		"budget not found",
		domainerror.ErrBudgetNotFound,
	)
}
