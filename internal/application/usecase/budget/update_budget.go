package budget

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finanzas-pareja/ledger/internal/application/adapter"
	"github.com/finanzas-pareja/ledger/internal/domain/entity"
	domainerror "github.com/finanzas-pareja/ledger/internal/domain/error"
	"github.com/finanzas-pareja/ledger/internal/domain/valueobject"
)

// UpdateBudgetInput represents a partial budget update. Nil fields keep their value.
// Changing the period without dates moves the window to the current one of the new period.
type UpdateBudgetInput struct {
	BudgetID     uuid.UUID
	UserID       uuid.UUID
	CategoryName *string
	MaxAmount    *decimal.Decimal
	Period       *entity.BudgetPeriod
	StartDate    *time.Time
	EndDate      *time.Time
}

// UpdateBudgetOutput represents the updated budget and its evaluation.
type UpdateBudgetOutput struct {
	Budget *entity.BudgetWithStatus
}

// UpdateBudgetUseCase handles budget update logic.
type UpdateBudgetUseCase struct {
	budgetRepo   adapter.BudgetRepository
	categoryRepo adapter.CategoryRepository
	movementRepo adapter.MovementRepository
	now          func() time.Time
}

// NewUpdateBudgetUseCase creates a new UpdateBudgetUseCase instance.
func NewUpdateBudgetUseCase(
	budgetRepo adapter.BudgetRepository,
	categoryRepo adapter.CategoryRepository,
	movementRepo adapter.MovementRepository,
) *UpdateBudgetUseCase {
	return &UpdateBudgetUseCase{
		budgetRepo:   budgetRepo,
		categoryRepo: categoryRepo,
		movementRepo: movementRepo,
		now:          time.Now,
	}
}

// WithClock overrides the clock used when a period change resets the window.
func (uc *UpdateBudgetUseCase) WithClock(now func() time.Time) *UpdateBudgetUseCase {
	uc.now = now
	return uc
}

// Execute applies the provided fields, validates the result and re-evaluates the budget.
func (uc *UpdateBudgetUseCase) Execute(ctx context.Context, input UpdateBudgetInput) (*UpdateBudgetOutput, error) {
	budget, err := uc.budgetRepo.FindByID(ctx, input.BudgetID, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrBudgetNotFound) {
			return nil, budgetNotFound()
		}
		return nil, domainerror.NewStorageError("find budget", err)
	}

	if input.MaxAmount != nil {
		if err := validateMaxAmount(*input.MaxAmount); err != nil {
			return nil, err
		}
		budget.MaxAmount = *input.MaxAmount
	}

	window := valueobject.NewDateWindow(budget.StartDate, budget.EndDate)
	if input.Period != nil {
		if err := validatePeriod(*input.Period); err != nil {
			return nil, err
		}
		if *input.Period != budget.Period {
			window = valueobject.CurrentPeriod(*input.Period, uc.now())
		}
		budget.Period = *input.Period
	}
	if input.StartDate != nil {
		window.Start = valueobject.DateOnly(*input.StartDate)
	}
	if input.EndDate != nil {
		window.End = valueobject.DateOnly(*input.EndDate)
	}
	if err := validateWindow(window); err != nil {
		return nil, err
	}
	budget.StartDate, budget.EndDate = window.Start, window.End

	var category *entity.Category
	if input.CategoryName != nil {
		name, err := normalizeCategoryName(*input.CategoryName)
		if err != nil {
			return nil, err
		}
		category, err = uc.categoryRepo.FindOrCreate(ctx, input.UserID, name, entity.MovementTypeExpense)
		if err != nil {
			return nil, domainerror.NewStorageError("resolve budget category", err)
		}
		budget.CategoryID = category.ID
	} else {
		category, err = uc.categoryRepo.FindByID(ctx, budget.CategoryID)
		if err != nil {
			return nil, domainerror.NewStorageError("find budget category", err)
		}
	}

	budget.UpdatedAt = time.Now().UTC()

	if err := uc.budgetRepo.Update(ctx, budget); err != nil {
		if errors.Is(err, domainerror.ErrBudgetNotFound) {
			return nil, budgetNotFound()
		}
		return nil, domainerror.NewStorageError("update budget", err)
	}

	evaluated, err := evaluate(ctx, uc.movementRepo, budget, category)
	if err != nil {
		return nil, err
	}

	return &UpdateBudgetOutput{
		Budget: evaluated,
	}, nil
}
