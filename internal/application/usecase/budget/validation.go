package budget

import (
	"github.com/shopspring/decimal"

	"github.com/finanzas-pareja/ledger/internal/application/usecase/movement"
	"github.com/finanzas-pareja/ledger/internal/domain/entity"
	domainerror "github.com/finanzas-pareja/ledger/internal/domain/error"
	"github.com/finanzas-pareja/ledger/internal/domain/valueobject"
)

// Caps share the decimal(15,2) column shape of movement amounts.
func validateMaxAmount(maxAmount decimal.Decimal) error {
	if maxAmount.IsNegative() || !movement.ValidAmountScale(maxAmount) {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidMaxAmount,
			"max amount must not be negative and must have at most 2 decimals",
			domainerror.ErrInvalidMaxAmount,
		)
	}
	return nil
}

func validatePeriod(period entity.BudgetPeriod) error {
	if !period.IsValid() {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetPeriod,
			"period must be 'weekly', 'monthly' or 'yearly'",
			domainerror.ErrInvalidBudgetPeriod,
		)
	}
	return nil
}

func normalizeCategoryName(raw string) (string, error) {
	name, err := movement.NormalizeCategoryName(raw)
	if err != nil {
		return "", domainerror.NewBudgetError(
			domainerror.ErrCodeBudgetCategoryNeeded,
			err.Error(),
			err,
		)
	}
	return name, nil
}

func validateWindow(window valueobject.DateWindow) error {
	if !window.IsValid() {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetWindow,
			"end date must not be before start date",
			domainerror.ErrInvalidBudgetWindow,
		)
	}
	return nil
}
