// Package movement contains the ledger writer and reader use cases.
package movement

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finanzas-pareja/ledger/internal/domain/entity"
	domainerror "github.com/finanzas-pareja/ledger/internal/domain/error"
)

const (
	// MaxDescriptionLength is the maximum allowed length for movement descriptions.
	MaxDescriptionLength = 255
	// MaxCategoryNameLength is the maximum allowed length for category names.
	MaxCategoryNameLength = 50
)

// ParseType validates a movement type tag, accepting the Spanish aliases.
func ParseType(raw string) (entity.MovementType, error) {
	movementType, ok := entity.ParseMovementType(raw)
	if !ok {
		return "", domainerror.NewMovementError(
			domainerror.ErrCodeInvalidMovementType,
			"type must be 'income' or 'expense'",
			domainerror.ErrInvalidMovementType,
		)
	}
	return movementType, nil
}

// NormalizeCategoryName trims a category name and checks its length.
func NormalizeCategoryName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", domainerror.NewMovementError(
			domainerror.ErrCodeMissingCategoryName,
			"category name is required",
			domainerror.ErrCategoryNameRequired,
		)
	}
	if len([]rune(name)) > MaxCategoryNameLength {
		return "", domainerror.NewMovementError(
			domainerror.ErrCodeMovementCategoryLong,
			fmt.Sprintf("category name must not exceed %d characters", MaxCategoryNameLength),
			domainerror.ErrCategoryNameTooLong,
		)
	}
	return name, nil
}

// MaxAmount is the largest value a decimal(15,2) amount column holds.
var MaxAmount = decimal.RequireFromString("9999999999999.99")

// ValidAmountScale reports whether amount fits a decimal(15,2) column
// without rounding or overflow.
func ValidAmountScale(amount decimal.Decimal) bool {
	return amount.Equal(amount.Round(2)) && amount.Abs().LessThanOrEqual(MaxAmount)
}

func validateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return domainerror.NewMovementError(
			domainerror.ErrCodeInvalidMovementAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidMovementAmount,
		)
	}
	if !ValidAmountScale(amount) {
		return domainerror.NewMovementError(
			domainerror.ErrCodeInvalidMovementAmount,
			"amount must have at most 2 decimals and 13 integer digits",
			domainerror.ErrInvalidMovementAmount,
		)
	}
	return nil
}

func validateDescription(description string) error {
	if len([]rune(description)) > MaxDescriptionLength {
		return domainerror.NewMovementError(
			domainerror.ErrCodeDescriptionTooLong,
			fmt.Sprintf("description must not exceed %d characters", MaxDescriptionLength),
			domainerror.ErrDescriptionTooLong,
		)
	}
	return nil
}

func validateDate(date time.Time) error {
	if date.IsZero() {
		return domainerror.NewMovementError(
			domainerror.ErrCodeInvalidMovementDate,
			"date is required",
			domainerror.ErrInvalidMovementDate,
		)
	}
	return nil
}

func validateRecurrence(recurrence *entity.Recurrence) error {
	if !recurrence.Frequency.IsValid() {
		return domainerror.NewMovementError(
			domainerror.ErrCodeInvalidFrequency,
			"frequency must be 'daily', 'weekly', 'monthly' or 'yearly'",
			domainerror.ErrInvalidFrequency,
		)
	}
	if recurrence.ScheduledDate.IsZero() {
		return domainerror.NewMovementError(
			domainerror.ErrCodeInvalidRecurrenceWindow,
			"scheduled date is required for recurring movements",
			domainerror.ErrInvalidRecurrenceWindow,
		)
	}
	if recurrence.EndDate != nil && recurrence.EndDate.Before(recurrence.ScheduledDate) {
		return domainerror.NewMovementError(
			domainerror.ErrCodeInvalidRecurrenceWindow,
			"end date must not be before the scheduled date",
			domainerror.ErrInvalidRecurrenceWindow,
		)
	}
	return nil
}

func notFound() error {
	return domainerror.NewMovementError(
		domainerror.ErrCodeMovementNotFound,
		"movement not found",
		domainerror.ErrMovementNotFound,
	)
}
