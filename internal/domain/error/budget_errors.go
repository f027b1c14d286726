// Package error defines domain-specific errors for the ledger application.
package error

import "errors"

// Budget domain errors.
var (
	// ErrBudgetNotFound is returned when a budget does not exist or belongs to another user.
	ErrBudgetNotFound = errors.New("budget not found")

	// ErrInvalidMaxAmount is returned when the budget cap is negative.
	ErrInvalidMaxAmount = errors.New("invalid max amount")

	// ErrInvalidBudgetPeriod is returned when the budget period is invalid.
	ErrInvalidBudgetPeriod = errors.New("invalid budget period")

	// ErrInvalidBudgetWindow is returned when the end date precedes the start date.
	ErrInvalidBudgetWindow = errors.New("invalid budget window")
)

// BudgetErrorCode defines error codes for budget errors.
// Format: BGT-XXYYYY where XX is category and YYYY is specific error.
type BudgetErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidMaxAmount     BudgetErrorCode = "BGT-010001"
	ErrCodeInvalidBudgetPeriod  BudgetErrorCode = "BGT-010002"
	ErrCodeInvalidBudgetWindow  BudgetErrorCode = "BGT-010003"
	ErrCodeMissingBudgetFields  BudgetErrorCode = "BGT-010004"
	ErrCodeBudgetCategoryNeeded BudgetErrorCode = "BGT-010005"

	// Lookup errors (02XXXX)
	ErrCodeBudgetNotFound BudgetErrorCode = "BGT-020001"
)

var budgetErrorKinds = map[BudgetErrorCode]Kind{
	ErrCodeInvalidMaxAmount:     KindValidation,
	ErrCodeInvalidBudgetPeriod:  KindValidation,
	ErrCodeInvalidBudgetWindow:  KindValidation,
	ErrCodeMissingBudgetFields:  KindValidation,
	ErrCodeBudgetCategoryNeeded: KindValidation,
	ErrCodeBudgetNotFound:       KindNotFound,
}

// BudgetError represents a budget error with code and message.
type BudgetError struct {
	Code    BudgetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BudgetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BudgetError) Unwrap() error {
	return e.Err
}

// Kind implements Kinded.
func (e *BudgetError) Kind() Kind {
	if kind, ok := budgetErrorKinds[e.Code]; ok {
		return kind
	}
	return KindInternal
}

// ErrorCode returns the code as a plain string.
func (e *BudgetError) ErrorCode() string {
	return string(e.Code)
}

// PublicMessage returns the message safe to show to API clients.
func (e *BudgetError) PublicMessage() string {
	return e.Message
}

// NewBudgetError creates a new BudgetError with the given code and message.
func NewBudgetError(code BudgetErrorCode, message string, err error) *BudgetError {
	return &BudgetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
