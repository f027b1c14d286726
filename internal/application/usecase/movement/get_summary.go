package movement

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/finanzas-pareja/ledger/internal/application/adapter"
	"github.com/finanzas-pareja/ledger/internal/domain/entity"
	domainerror "github.com/finanzas-pareja/ledger/internal/domain/error"
	"github.com/finanzas-pareja/ledger/internal/domain/valueobject"
)

// GetSummaryInput represents the input for the ledger summary.
// A nil bound falls back to the current month-to-date window.
type GetSummaryInput struct {
	UserID    uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
}

// GetSummaryOutput represents the income, expense and balance of a window.
type GetSummaryOutput struct {
	Summary *entity.LedgerSummary
}

// GetSummaryUseCase aggregates one-time movements over a window.
type GetSummaryUseCase struct {
	movementRepo adapter.MovementRepository
	now          func() time.Time
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(movementRepo adapter.MovementRepository) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		movementRepo: movementRepo,
		now:          time.Now,
	}
}

// WithClock overrides the clock used for the default window.
func (uc *GetSummaryUseCase) WithClock(now func() time.Time) *GetSummaryUseCase {
	uc.now = now
	return uc
}

// Execute returns {income_total, expense_total, balance}. Recurring templates
// never count.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input GetSummaryInput) (*GetSummaryOutput, error) {
	window, err := resolveWindow(input.StartDate, input.EndDate, uc.now())
	if err != nil {
		return nil, err
	}

	totals, err := uc.movementRepo.GetTotals(ctx, input.UserID, window.Start, window.End)
	if err != nil {
		return nil, domainerror.NewStorageError("summarize movements", err)
	}

	return &GetSummaryOutput{
		Summary: &entity.LedgerSummary{
			StartDate:    window.Start,
			EndDate:      window.End,
			IncomeTotal:  totals.IncomeTotal,
			ExpenseTotal: totals.ExpenseTotal,
			Balance:      totals.IncomeTotal.Sub(totals.ExpenseTotal),
		},
	}, nil
}

// resolveWindow fills missing bounds from the month-to-date window of now.
// A lone start date after today runs to the end of its own month.
func resolveWindow(start, end *time.Time, now time.Time) (valueobject.DateWindow, error) {
	window := valueobject.MonthToDate(now)
	if start != nil {
		window.Start = valueobject.DateOnly(*start)
		if end == nil && window.Start.After(window.End) {
			window.End = valueobject.CurrentPeriod(entity.BudgetPeriodMonthly, window.Start).End
		}
	}
	if end != nil {
		window.End = valueobject.DateOnly(*end)
	}
	if !window.IsValid() {
		return window, invalidDateRange()
	}
	return window, nil
}
