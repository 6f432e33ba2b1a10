package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/vaxscheduler/internal/common"
	"github.com/dmitrijs2005/vaxscheduler/internal/models"
)

func (a *App) UploadAvailability(ctx context.Context, args []string) error {
	if _, err := a.sess.RequireRole(models.RoleCaregiver); err != nil {
		return caregiverFailure.report(err)
	}
	if len(args) != 1 {
		return caregiverFailure.report(errUsage)
	}

	if err := a.svc.Availability.Upload(ctx, a.sess, args[0]); err != nil {
		return caregiverFailure.report(err)
	}
	printlnFn(msgSlotUploaded)
	return nil
}

func (a *App) AddDoses(ctx context.Context, args []string) error {
	if _, err := a.sess.RequireRole(models.RoleCaregiver); err != nil {
		return caregiverFailure.report(err)
	}
	if len(args) != 2 {
		return caregiverFailure.report(errUsage)
	}
	count, err := strconv.Atoi(args[1])
	if err != nil {
		return caregiverFailure.report(fmt.Errorf("dose count %q: %w", args[1], common.ErrValidation))
	}

	if err := a.svc.Inventory.AddDoses(ctx, a.sess, args[0], count); err != nil {
		return caregiverFailure.report(err)
	}
	printlnFn(msgDosesUpdated)
	return nil
}
