package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/vaxscheduler/internal/common"
	"github.com/dmitrijs2005/vaxscheduler/internal/models"
)

func (a *App) CreatePatient(ctx context.Context, args []string) error {
	return a.createUser(ctx, models.RolePatient, args)
}

func (a *App) CreateCaregiver(ctx context.Context, args []string) error {
	return a.createUser(ctx, models.RoleCaregiver, args)
}

// createUser registers an account. It does not log the new user in.
func (a *App) createUser(ctx context.Context, role models.Role, args []string) error {
	if len(args) != 2 {
		return createFailure.report(errUsage)
	}
	userName, password := args[0], []byte(args[1])
	defer common.WipeByteArray(password)

	if err := a.svc.Accounts.Register(ctx, role, userName, password); err != nil {
		return createFailure.report(err)
	}
	printlnFn("Created user", userName)
	return nil
}

func (a *App) LoginPatient(ctx context.Context, args []string) error {
	return a.login(ctx, models.RolePatient, args)
}

func (a *App) LoginCaregiver(ctx context.Context, args []string) error {
	return a.login(ctx, models.RoleCaregiver, args)
}

func (a *App) login(ctx context.Context, role models.Role, args []string) error {
	if a.sess.LoggedIn() {
		return loginFailure.report(common.ErrAlreadyLoggedIn)
	}
	if len(args) != 2 {
		return loginFailure.report(errUsage)
	}
	userName, password := args[0], []byte(args[1])
	defer common.WipeByteArray(password)

	if err := a.svc.Accounts.Login(ctx, a.sess, role, userName, password); err != nil {
		return loginFailure.report(err)
	}
	printlnFn(fmt.Sprintf("Logged in as: %s", userName))
	return nil
}

func (a *App) Logout(ctx context.Context, args []string) error {
	if _, err := a.sess.RequireAny(); err != nil {
		return generalFailure.report(err)
	}
	if len(args) != 0 {
		return generalFailure.report(errUsage)
	}
	if err := a.svc.Accounts.Logout(ctx, a.sess); err != nil {
		return generalFailure.report(err)
	}
	printlnFn(msgLoggedOut)
	return nil
}
