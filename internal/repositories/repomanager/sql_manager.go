// Package repomanager provides the RepositoryManager for the SQL backends
// (PostgreSQL via pgx, SQLite via modernc), wiring together repository
// constructors and schema migrations (via goose).
package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/vaxscheduler/internal/dbx"
	"github.com/dmitrijs2005/vaxscheduler/internal/logging"
	"github.com/dmitrijs2005/vaxscheduler/internal/migrations"
	"github.com/dmitrijs2005/vaxscheduler/internal/repositories/accounts"
	"github.com/dmitrijs2005/vaxscheduler/internal/repositories/appointments"
	"github.com/dmitrijs2005/vaxscheduler/internal/repositories/availabilities"
	"github.com/dmitrijs2005/vaxscheduler/internal/repositories/vaccines"
	"github.com/pressly/goose/v3"
)

// SQLRepositoryManager vends SQL-backed repository implementations and
// knows which migration set matches its driver.
type SQLRepositoryManager struct {
	gooseDialect  string
	migrationsDir string
	logger        logging.Logger
}

// Accounts returns an accounts.Repository bound to the provided DBTX.
func (m *SQLRepositoryManager) Accounts(db dbx.DBTX) accounts.Repository {
	return accounts.NewSQLRepository(db)
}

// Vaccines returns a vaccines.Repository bound to the provided DBTX.
func (m *SQLRepositoryManager) Vaccines(db dbx.DBTX) vaccines.Repository {
	return vaccines.NewSQLRepository(db)
}

// Availabilities returns an availabilities.Repository bound to the provided DBTX.
func (m *SQLRepositoryManager) Availabilities(db dbx.DBTX) availabilities.Repository {
	return availabilities.NewSQLRepository(db)
}

// Appointments returns an appointments.Repository bound to the provided DBTX.
func (m *SQLRepositoryManager) Appointments(db dbx.DBTX) appointments.Repository {
	return appointments.NewSQLRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations for the
// manager's dialect and applies them.
func (m *SQLRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(&gooseLogger{ctx: ctx, l: m.logger})
	if err := goose.SetDialect(m.gooseDialect); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := gooseUpContext(ctx, db, m.migrationsDir); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}
	return nil
}

// NewRepositoryManager constructs a RepositoryManager for a database/sql
// driver name (dbx.DriverPostgres or dbx.DriverSQLite).
func NewRepositoryManager(driver string, logger logging.Logger) (RepositoryManager, error) {
	m := &SQLRepositoryManager{logger: logger}
	switch driver {
	case dbx.DriverPostgres:
		m.gooseDialect, m.migrationsDir = "postgres", "postgres"
	case dbx.DriverSQLite:
		m.gooseDialect, m.migrationsDir = "sqlite3", "sqlite"
	default:
		return nil, fmt.Errorf("unsupported db driver %q", driver)
	}
	return m, nil
}

// gooseLogger routes goose progress messages to the diagnostic log instead
// of stdout, which belongs to the CLI.
type gooseLogger struct {
	ctx context.Context
	l   logging.Logger
}

func (g *gooseLogger) Printf(format string, v ...any) {
	g.l.Debug(g.ctx, fmt.Sprintf(format, v...), "component", "goose")
}

func (g *gooseLogger) Fatalf(format string, v ...any) {
	g.l.Error(g.ctx, fmt.Sprintf(format, v...), "component", "goose")
}
