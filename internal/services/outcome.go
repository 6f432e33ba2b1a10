package services

import (
	"errors"

	"github.com/dmitrijs2005/vaxscheduler/internal/common"
)

// Outcome condenses an operation result into a short metrics label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, common.ErrValidation), errors.Is(err, common.ErrInvalidDate):
		return "invalid"
	case errors.Is(err, common.ErrNotLoggedIn), errors.Is(err, common.ErrAlreadyLoggedIn),
		errors.Is(err, common.ErrWrongRole), errors.Is(err, common.ErrorUnauthorized):
		return "unauthorized"
	case errors.Is(err, common.ErrNoCaregiverAvailable):
		return "no_caregiver"
	case errors.Is(err, common.ErrUnknownVaccine), errors.Is(err, common.ErrAppointmentNotFound),
		errors.Is(err, common.ErrorNotFound):
		return "not_found"
	case errors.Is(err, common.ErrOutOfStock):
		return "out_of_stock"
	case errors.Is(err, common.ErrConflict), errors.Is(err, common.ErrDuplicateSlot),
		errors.Is(err, common.ErrUsernameTaken):
		return "conflict"
	default:
		return "error"
	}
}
