package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/vaxscheduler/internal/common"
	"github.com/dmitrijs2005/vaxscheduler/internal/models"
)

func (a *App) SearchCaregiverSchedule(ctx context.Context, args []string) error {
	if _, err := a.sess.RequireAny(); err != nil {
		return generalFailure.report(err)
	}
	if len(args) != 1 {
		return generalFailure.report(errUsage)
	}

	rows, err := a.svc.Schedule.Search(ctx, a.sess, args[0])
	if err != nil {
		return generalFailure.report(err)
	}
	if len(rows) == 0 {
		return generalFailure.report(common.ErrNoCaregiverAvailable)
	}
	for _, r := range rows {
		printlnFn(fmt.Sprintf("[Caregiver: %s] [Vaccine: %s] [Doses: %d]", r.Caregiver, r.Vaccine, r.Doses))
	}
	return nil
}

func (a *App) ShowAppointments(ctx context.Context, args []string) error {
	id, err := a.sess.RequireAny()
	if err != nil {
		return generalFailure.report(err)
	}
	if len(args) != 0 {
		return generalFailure.report(errUsage)
	}

	items, err := a.svc.Appointments.List(ctx, a.sess)
	if err != nil {
		return generalFailure.report(err)
	}
	if len(items) == 0 {
		printlnFn(msgNoAppointments)
		return nil
	}

	counterpart := "Caregiver"
	if id.Role == models.RoleCaregiver {
		counterpart = "Patient"
	}
	printlnFn("AppointmentID Vaccine Date " + counterpart)
	for _, it := range items {
		printlnFn(it.ID, it.Vaccine, it.Date, it.Counterpart)
	}
	return nil
}

func (a *App) Cancel(ctx context.Context, args []string) error {
	if _, err := a.sess.RequireAny(); err != nil {
		return generalFailure.report(err)
	}
	if len(args) != 1 {
		return generalFailure.report(errUsage)
	}

	if err := a.svc.Appointments.Cancel(ctx, a.sess, args[0]); err != nil {
		return generalFailure.report(err)
	}
	printlnFn(fmt.Sprintf("Appointment %s cancelled!", args[0]))
	return nil
}
