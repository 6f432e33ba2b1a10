package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/vaxscheduler/internal/models"
)

func (a *App) Reserve(ctx context.Context, args []string) error {
	if _, err := a.sess.RequireRole(models.RolePatient); err != nil {
		return patientFailure.report(err)
	}
	if len(args) != 2 {
		return patientFailure.report(errUsage)
	}

	res, err := a.svc.Reservations.Reserve(ctx, a.sess, args[0], args[1])
	if err != nil {
		return patientFailure.report(err)
	}
	printlnFn(fmt.Sprintf("[Appointment ID: %s] [Caregiver username: %s]", res.AppointmentID, res.Caregiver))
	return nil
}
