package budget

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finanzas-pareja/ledger/internal/application/adapter"
)

// BudgetSummaryInput represents the input for the budget report.
type BudgetSummaryInput struct {
	UserID uuid.UUID
}

// BudgetSummaryOutput aggregates every budget of a user.
// TotalRemaining sums the clamped remainder of each budget, so an
// overspent budget contributes zero rather than a negative amount.
type BudgetSummaryOutput struct {
	TotalBudgets   int
	TotalAllocated decimal.Decimal
	TotalSpent     decimal.Decimal
	TotalRemaining decimal.Decimal
}

// BudgetSummaryUseCase totals caps and spending across budgets.
type BudgetSummaryUseCase struct {
	list *ListBudgetsUseCase
}

// NewBudgetSummaryUseCase creates a new BudgetSummaryUseCase instance.
func NewBudgetSummaryUseCase(
	budgetRepo adapter.BudgetRepository,
	categoryRepo adapter.CategoryRepository,
	movementRepo adapter.MovementRepository,
) *BudgetSummaryUseCase {
	return &BudgetSummaryUseCase{
		list: NewListBudgetsUseCase(budgetRepo, categoryRepo, movementRepo),
	}
}

// Execute evaluates each budget over its own window and sums the results.
func (uc *BudgetSummaryUseCase) Execute(ctx context.Context, input BudgetSummaryInput) (*BudgetSummaryOutput, error) {
	listed, err := uc.list.Execute(ctx, ListBudgetsInput{UserID: input.UserID})
	if err != nil {
		return nil, err
	}

	output := &BudgetSummaryOutput{
		TotalBudgets:   len(listed.Budgets),
		TotalAllocated: decimal.Zero,
		TotalSpent:     decimal.Zero,
		TotalRemaining: decimal.Zero,
	}
	for _, b := range listed.Budgets {
		output.TotalAllocated = output.TotalAllocated.Add(b.Status.MaxAmount)
		output.TotalSpent = output.TotalSpent.Add(b.Status.CurrentAmount)
		output.TotalRemaining = output.TotalRemaining.Add(b.Status.RemainingAmount)
	}
	return output, nil
}
