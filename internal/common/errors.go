// Package common defines sentinel errors and small helpers shared by the
// scheduler layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Bad credentials.
	ErrorUnauthorized = errors.New("unauthorized")

	// Validation errors. Reported before any store access.
	ErrValidation  = errors.New("validation error")
	ErrInvalidDate = errors.New("invalid date")

	// Session / auth gate errors.
	ErrNotLoggedIn     = errors.New("not logged in")
	ErrAlreadyLoggedIn = errors.New("already logged in")
	ErrWrongRole       = errors.New("operation not permitted for this role")

	// Lookup failures.
	ErrUnknownVaccine       = errors.New("unknown vaccine")
	ErrNoCaregiverAvailable = errors.New("no caregiver available")
	ErrAppointmentNotFound  = errors.New("appointment not found")

	// Conflicts: a conditional write did not apply.
	ErrConflict      = errors.New("conflict")
	ErrUsernameTaken = errors.New("username taken")
	ErrDuplicateSlot = errors.New("availability slot already exists")
	ErrOutOfStock    = errors.New("out of stock")
)
