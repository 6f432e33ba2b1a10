package cli

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/vaxscheduler/internal/common"
	"github.com/dmitrijs2005/vaxscheduler/internal/services"
)

// Outcome lines.
const (
	msgTryAgain          = "Please try again!"
	msgCreateFailed      = "Failed to create user."
	msgUsernameTaken     = "Username taken, try again!"
	msgLoginFailed       = "Login failed."
	msgAlreadyLoggedIn   = "User already logged in."
	msgLoginFirst        = "Please login first!"
	msgLoginAsPatient    = "Please login as a patient!"
	msgLoginAsCaregiver  = "Please login as a caregiver first!"
	msgInvalidDate       = "Please enter a valid date in format YYYY-MM-DD!"
	msgNoCaregiver       = "No Caregiver is available!"
	msgUnknownVaccine    = "Sorry! We do not offer that vaccine!"
	msgNotEnoughDoses    = "Not enough available doses!"
	msgSlotUploaded      = "Availability uploaded!"
	msgSlotExists        = "Availability already uploaded for that date!"
	msgDosesUpdated      = "Doses updated!"
	msgNoAppointments    = "No scheduled appointments!"
	msgAppointmentAbsent = "Appointment not found!"
	msgLoggedOut         = "Successfully logged out!"
)

var (
	errUsage          = fmt.Errorf("wrong number of arguments: %w", common.ErrValidation)
	errUnknownCommand = fmt.Errorf("unknown command: %w", common.ErrValidation)
)

// failure describes how one command reports errors that have no dedicated
// outcome line: wrongRole is printed for common.ErrWrongRole, fallback for
// everything unrecognised.
type failure struct {
	wrongRole string
	fallback  string
}

var (
	generalFailure   = failure{wrongRole: msgTryAgain, fallback: msgTryAgain}
	patientFailure   = failure{wrongRole: msgLoginAsPatient, fallback: msgTryAgain}
	caregiverFailure = failure{wrongRole: msgLoginAsCaregiver, fallback: msgTryAgain}
	createFailure    = failure{wrongRole: msgCreateFailed, fallback: msgCreateFailed}
	loginFailure     = failure{wrongRole: msgLoginFailed, fallback: msgLoginFailed}
)

// message maps err to the outcome line shown to the user.
func (f failure) message(err error) string {
	switch {
	case errors.Is(err, common.ErrNotLoggedIn):
		return msgLoginFirst
	case errors.Is(err, common.ErrWrongRole):
		return f.wrongRole
	case errors.Is(err, common.ErrAlreadyLoggedIn):
		return msgAlreadyLoggedIn
	case errors.Is(err, common.ErrorUnauthorized):
		return msgLoginFailed
	case errors.Is(err, common.ErrInvalidDate):
		return msgInvalidDate
	case errors.Is(err, common.ErrUsernameTaken):
		return msgUsernameTaken
	case errors.Is(err, common.ErrNoCaregiverAvailable):
		return msgNoCaregiver
	case errors.Is(err, common.ErrUnknownVaccine):
		return msgUnknownVaccine
	case errors.Is(err, common.ErrOutOfStock):
		return msgNotEnoughDoses
	case errors.Is(err, common.ErrDuplicateSlot):
		return msgSlotExists
	case errors.Is(err, common.ErrAppointmentNotFound):
		return msgAppointmentAbsent
	}
	return f.fallback
}

// report prints the outcome line for err and passes err through.
func (f failure) report(err error) error {
	printlnFn(f.message(err))
	return err
}

func outcomeLabel(err error) string {
	return services.Outcome(err)
}

// isExpected reports whether err is a user-level rejection rather than a
// store or internal failure.
func isExpected(err error) bool {
	return outcomeLabel(err) != "error"
}
