// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Record errors.
	ErrNotFound     = errors.New("not found")
	ErrDuplicateFee = errors.New("fee already exists for that member and month")

	// Input errors.
	ErrInvalidAmount = errors.New("amount must be greater than zero")
	ErrValidation    = errors.New("validation failed")

	// Backup errors.
	ErrInvalidBackup = errors.New("invalid backup file structure")

	// Configuration errors.
	ErrMissingConfig = errors.New("missing configuration")
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}
