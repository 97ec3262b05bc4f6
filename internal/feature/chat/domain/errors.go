// Package domain defines domain-level errors for the chat feature.
package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is the category shared by every "required record is absent" error.
// Callers should test with errors.Is(err, ErrNotFound) rather than comparing
// against the specific variants below.
var ErrNotFound = errors.New("not found")

var (
	// ErrUserNotFound is returned by strict lookups when no user owns the access token.
	ErrUserNotFound = fmt.Errorf("no user for this access token: %w", ErrNotFound)

	// ErrRoomNotFound is returned when no room matches the requested ID.
	ErrRoomNotFound = fmt.Errorf("room not found: %w", ErrNotFound)
)

// StoreError reports that the underlying data store failed to execute a statement
// (constraint violation, connectivity, malformed query, row shape mismatch).
//
// Error returns the store's own message unchanged. Op names the store operation
// for logging, and Code carries the SQLSTATE when the driver reported one.
type StoreError struct {
	Op   string
	Code string
	Err  error
}

func (e *StoreError) Error() string {
	if e.Err == nil {
		return e.Op + ": unknown store error"
	}
	return e.Err.Error()
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// IsStoreError reports whether err (or anything it wraps) is a *StoreError.
func IsStoreError(err error) bool {
	var se *StoreError
	return errors.As(err, &se)
}
