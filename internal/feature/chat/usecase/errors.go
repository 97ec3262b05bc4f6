// Package usecase implements the business logic for the chat feature.
package usecase

import "errors"

// ErrInvalidUser is returned when a user record is missing a required field.
var ErrInvalidUser = errors.New("invalid user")
