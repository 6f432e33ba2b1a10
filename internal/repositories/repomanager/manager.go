package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/vaxscheduler/internal/dbx"
	"github.com/dmitrijs2005/vaxscheduler/internal/repositories/accounts"
	"github.com/dmitrijs2005/vaxscheduler/internal/repositories/appointments"
	"github.com/dmitrijs2005/vaxscheduler/internal/repositories/availabilities"
	"github.com/dmitrijs2005/vaxscheduler/internal/repositories/vaccines"
)

// RepositoryManager vends repositories bound to a DBTX, so services can use
// the same repositories inside and outside of a transaction.
type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	Accounts(db dbx.DBTX) accounts.Repository
	Vaccines(db dbx.DBTX) vaccines.Repository
	Availabilities(db dbx.DBTX) availabilities.Repository
	Appointments(db dbx.DBTX) appointments.Repository
}
