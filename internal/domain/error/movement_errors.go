// Package error defines domain-specific errors for the ledger application.
package error

import "errors"

// Movement domain errors.
var (
	// ErrMovementNotFound is returned when a movement does not exist or belongs to another user.
	ErrMovementNotFound = errors.New("movement not found")

	// ErrInvalidMovementType is returned when the movement type is not income or expense.
	ErrInvalidMovementType = errors.New("invalid movement type")

	// ErrInvalidMovementAmount is returned when the amount is zero or negative.
	ErrInvalidMovementAmount = errors.New("invalid movement amount")

	// ErrInvalidMovementDate is returned when the movement date is missing or malformed.
	ErrInvalidMovementDate = errors.New("invalid movement date")

	// ErrDescriptionTooLong is returned when the description exceeds the maximum length.
	ErrDescriptionTooLong = errors.New("description too long")

	// ErrInvalidFrequency is returned when a recurrence frequency is unknown.
	ErrInvalidFrequency = errors.New("invalid frequency")

	// ErrInvalidRecurrenceWindow is returned when the end date precedes the scheduled date.
	ErrInvalidRecurrenceWindow = errors.New("end date before scheduled date")

	// ErrRecurringNotPending is returned when approving or rejecting a movement that is not a
	// pending recurring template (unknown, foreign, or already processed).
	ErrRecurringNotPending = errors.New("pending recurring movement not found")

	// ErrRecurringImmutable is returned when updating a recurring template through the ledger writer.
	ErrRecurringImmutable = errors.New("recurring movements cannot be edited")

	// ErrInvalidAmountRange is returned when a history filter has min greater than max.
	ErrInvalidAmountRange = errors.New("invalid amount range")

	// ErrInvalidDateRange is returned when a window ends before it starts.
	ErrInvalidDateRange = errors.New("invalid date range")
)

// MovementErrorCode defines error codes for movement errors.
// Format: MOV-XXYYYY where XX is category and YYYY is specific error.
type MovementErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidMovementType     MovementErrorCode = "MOV-010001"
	ErrCodeInvalidMovementDate     MovementErrorCode = "MOV-010002"
	ErrCodeInvalidMovementAmount   MovementErrorCode = "MOV-010003"
	ErrCodeMissingCategoryName     MovementErrorCode = "MOV-010004"
	ErrCodeDescriptionTooLong      MovementErrorCode = "MOV-010005"
	ErrCodeMissingMovementFields   MovementErrorCode = "MOV-010006"
	ErrCodeInvalidFrequency        MovementErrorCode = "MOV-010007"
	ErrCodeInvalidRecurrenceWindow MovementErrorCode = "MOV-010008"
	ErrCodeInvalidAmountRange      MovementErrorCode = "MOV-010009"
	ErrCodeInvalidDateRange        MovementErrorCode = "MOV-010010"
	ErrCodeRecurringImmutable      MovementErrorCode = "MOV-010011"
	ErrCodeMovementCategoryLong    MovementErrorCode = "MOV-010012"

	// Lookup errors (02XXXX)
	ErrCodeMovementNotFound    MovementErrorCode = "MOV-020001"
	ErrCodeRecurringNotPending MovementErrorCode = "MOV-020002"
)

var movementErrorKinds = map[MovementErrorCode]Kind{
	ErrCodeInvalidMovementType:     KindValidation,
	ErrCodeInvalidMovementDate:     KindValidation,
	ErrCodeInvalidMovementAmount:   KindValidation,
	ErrCodeMissingCategoryName:     KindValidation,
	ErrCodeDescriptionTooLong:      KindValidation,
	ErrCodeMissingMovementFields:   KindValidation,
	ErrCodeInvalidFrequency:        KindValidation,
	ErrCodeInvalidRecurrenceWindow: KindValidation,
	ErrCodeInvalidAmountRange:      KindValidation,
	ErrCodeInvalidDateRange:        KindValidation,
	ErrCodeRecurringImmutable:      KindValidation,
	ErrCodeMovementCategoryLong:    KindValidation,
	ErrCodeMovementNotFound:        KindNotFound,
	ErrCodeRecurringNotPending:     KindNotFound,
}

// MovementError represents a movement error with code and message.
type MovementError struct {
	Code    MovementErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *MovementError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *MovementError) Unwrap() error {
	return e.Err
}

// Kind implements Kinded.
func (e *MovementError) Kind() Kind {
	if kind, ok := movementErrorKinds[e.Code]; ok {
		return kind
	}
	return KindInternal
}

// ErrorCode returns the code as a plain string.
func (e *MovementError) ErrorCode() string {
	return string(e.Code)
}

// PublicMessage returns the message safe to show to API clients.
func (e *MovementError) PublicMessage() string {
	return e.Message
}

// NewMovementError creates a new MovementError with the given code and message.
func NewMovementError(code MovementErrorCode, message string, err error) *MovementError {
	return &MovementError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
