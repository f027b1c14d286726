package movement

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finanzas-pareja/ledger/internal/application/adapter"
	"github.com/finanzas-pareja/ledger/internal/domain/entity"
	domainerror "github.com/finanzas-pareja/ledger/internal/domain/error"
)

var hundred = decimal.NewFromInt(100)

// GetCategoryBreakdownInput represents the input for the per-category breakdown.
// Type defaults to expense.
type GetCategoryBreakdownInput struct {
	UserID    uuid.UUID
	Type      string
	StartDate *time.Time
	EndDate   *time.Time
}

// CategoryShare is one category's total and its share of the window total.
type CategoryShare struct {
	CategoryID   uuid.UUID
	CategoryName string
	Total        decimal.Decimal
	Count        int
	Percentage   decimal.Decimal
}

// GetCategoryBreakdownOutput represents the breakdown, largest category first.
type GetCategoryBreakdownOutput struct {
	StartDate  time.Time
	EndDate    time.Time
	Type       entity.MovementType
	Total      decimal.Decimal
	Categories []*CategoryShare
}

// GetCategoryBreakdownUseCase groups one-time movements by category.
type GetCategoryBreakdownUseCase struct {
	movementRepo adapter.MovementRepository
	now          func() time.Time
}

// NewGetCategoryBreakdownUseCase creates a new GetCategoryBreakdownUseCase instance.
func NewGetCategoryBreakdownUseCase(movementRepo adapter.MovementRepository) *GetCategoryBreakdownUseCase {
	return &GetCategoryBreakdownUseCase{
		movementRepo: movementRepo,
		now:          time.Now,
	}
}

// WithClock overrides the clock used for the default window.
func (uc *GetCategoryBreakdownUseCase) WithClock(now func() time.Time) *GetCategoryBreakdownUseCase {
	uc.now = now
	return uc
}

// Execute computes totals per category and each category's percentage of the sum.
func (uc *GetCategoryBreakdownUseCase) Execute(ctx context.Context, input GetCategoryBreakdownInput) (*GetCategoryBreakdownOutput, error) {
	movementType := entity.MovementTypeExpense
	if input.Type != "" {
		parsed, err := ParseType(input.Type)
		if err != nil {
			return nil, err
		}
		movementType = parsed
	}

	window, err := resolveWindow(input.StartDate, input.EndDate, uc.now())
	if err != nil {
		return nil, err
	}

	totals, err := uc.movementRepo.GetCategoryTotals(ctx, input.UserID, movementType, window.Start, window.End)
	if err != nil {
		return nil, domainerror.NewStorageError("break down movements", err)
	}

	grandTotal := decimal.Zero
	for _, t := range totals {
		grandTotal = grandTotal.Add(t.Total)
	}

	shares := make([]*CategoryShare, len(totals))
	for i, t := range totals {
		percentage := decimal.Zero
		if grandTotal.IsPositive() {
			percentage = t.Total.Div(grandTotal).Mul(hundred).Round(2)
		}
		shares[i] = &CategoryShare{
			CategoryID:   t.CategoryID,
			CategoryName: t.CategoryName,
			Total:        t.Total,
			Count:        t.Count,
			Percentage:   percentage,
		}
	}

	return &GetCategoryBreakdownOutput{
		StartDate:  window.Start,
		EndDate:    window.End,
		Type:       movementType,
		Total:      grandTotal,
		Categories: shares,
	}, nil
}
