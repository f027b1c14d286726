// Package error defines domain-specific errors for the ledger application.
package error

import (
	"errors"
	"fmt"
)

// Kind classifies a domain error independently of the domain that raised it.
type Kind string

const (
	KindValidation   Kind = "validation"
	KindNotFound     Kind = "not_found"
	KindConflict     Kind = "conflict"
	KindUnauthorized Kind = "unauthorized"
	KindStorage      Kind = "storage"
	KindInternal     Kind = "internal"
)

// Kinded is implemented by every coded domain error.
type Kinded interface {
	error
	Kind() Kind
}

// Coded is implemented by domain errors that carry a client-facing code.
type Coded interface {
	Kinded
	ErrorCode() string
	PublicMessage() string
}

// KindOf returns the Kind of the first coded error in err's chain,
// or KindInternal when there is none.
func KindOf(err error) Kind {
	var kinded Kinded
	if errors.As(err, &kinded) {
		return kinded.Kind()
	}
	return KindInternal
}

// ErrStorage is the sentinel wrapped by every StorageError.
var ErrStorage = errors.New("storage failure")

// StorageError reports a persistence failure (connectivity, timeout, constraint).
type StorageError struct {
	Op  string
	Err error
}

// Error implements the error interface.
func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure during %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *StorageError) Unwrap() error {
	return e.Err
}

// Is matches ErrStorage.
func (e *StorageError) Is(target error) bool {
	return target == ErrStorage
}

// Kind implements Kinded.
func (e *StorageError) Kind() Kind {
	return KindStorage
}

// ErrorCode returns the storage error code.
func (e *StorageError) ErrorCode() string {
	return "STG-010001"
}

// PublicMessage hides driver details from API clients.
func (e *StorageError) PublicMessage() string {
	return "a storage error occurred"
}

// NewStorageError wraps a repository error raised during op.
func NewStorageError(op string, err error) *StorageError {
	return &StorageError{
		Op:  op,
		Err: err,
	}
}
