// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finanzas-pareja/ledger/internal/application/adapter"
	"github.com/finanzas-pareja/ledger/internal/domain/entity"
	domainerror "github.com/finanzas-pareja/ledger/internal/domain/error"
	"github.com/finanzas-pareja/ledger/internal/domain/valueobject"
)

// CreateBudgetInput represents the input for budget creation.
// Nil dates default to the current calendar window of Period.
type CreateBudgetInput struct {
	UserID       uuid.UUID
	CategoryName string
	MaxAmount    decimal.Decimal
	Period       entity.BudgetPeriod
	StartDate    *time.Time
	EndDate      *time.Time
}

// CreateBudgetOutput represents the created budget and its first evaluation.
type CreateBudgetOutput struct {
	Budget *entity.BudgetWithStatus
}

// CreateBudgetUseCase handles budget creation logic.
type CreateBudgetUseCase struct {
	budgetRepo   adapter.BudgetRepository
	categoryRepo adapter.CategoryRepository
	movementRepo adapter.MovementRepository
	now          func() time.Time
}

// NewCreateBudgetUseCase creates a new CreateBudgetUseCase instance.
func NewCreateBudgetUseCase(
	budgetRepo adapter.BudgetRepository,
	categoryRepo adapter.CategoryRepository,
	movementRepo adapter.MovementRepository,
) *CreateBudgetUseCase {
	return &CreateBudgetUseCase{
		budgetRepo:   budgetRepo,
		categoryRepo: categoryRepo,
		movementRepo: movementRepo,
		now:          time.Now,
	}
}

// WithClock overrides the clock used for default windows.
func (uc *CreateBudgetUseCase) WithClock(now func() time.Time) *CreateBudgetUseCase {
	uc.now = now
	return uc
}

// Execute validates the cap and window, resolves the expense category by
// find-or-create and stores the budget.
func (uc *CreateBudgetUseCase) Execute(ctx context.Context, input CreateBudgetInput) (*CreateBudgetOutput, error) {
	if err := validateMaxAmount(input.MaxAmount); err != nil {
		return nil, err
	}
	if err := validatePeriod(input.Period); err != nil {
		return nil, err
	}

	categoryName, err := normalizeCategoryName(input.CategoryName)
	if err != nil {
		return nil, err
	}

	window := valueobject.CurrentPeriod(input.Period, uc.now())
	if input.StartDate != nil {
		window.Start = valueobject.DateOnly(*input.StartDate)
	}
	if input.EndDate != nil {
		window.End = valueobject.DateOnly(*input.EndDate)
	}
	if err := validateWindow(window); err != nil {
		return nil, err
	}

	category, err := uc.categoryRepo.FindOrCreate(ctx, input.UserID, categoryName, entity.MovementTypeExpense)
	if err != nil {
		return nil, domainerror.NewStorageError("resolve budget category", err)
	}

	budget := entity.NewBudget(input.UserID, category.ID, input.MaxAmount, input.Period, window.Start, window.End)
	if err := uc.budgetRepo.Create(ctx, budget); err != nil {
		return nil, domainerror.NewStorageError("create budget", err)
	}

	evaluated, err := evaluate(ctx, uc.movementRepo, budget, category)
	if err != nil {
		return nil, err
	}

	return &CreateBudgetOutput{
		Budget: evaluated,
	}, nil
}
