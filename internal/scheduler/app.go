// Package scheduler wires configuration, logging, the store, services and
// the CLI into a runnable application.
package scheduler

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/vaxscheduler/internal/buildinfo"
	"github.com/dmitrijs2005/vaxscheduler/internal/cli"
	"github.com/dmitrijs2005/vaxscheduler/internal/config"
	"github.com/dmitrijs2005/vaxscheduler/internal/dbx"
	"github.com/dmitrijs2005/vaxscheduler/internal/filex"
	"github.com/dmitrijs2005/vaxscheduler/internal/logging"
	"github.com/dmitrijs2005/vaxscheduler/internal/metrics"
	"github.com/dmitrijs2005/vaxscheduler/internal/repositories/repomanager"
	"github.com/dmitrijs2005/vaxscheduler/internal/services"
	"github.com/prometheus/client_golang/prometheus"
)

type App struct {
	config   *config.Config
	logger   logging.Logger
	logFile  io.Closer
	db       *sql.DB
	registry *prometheus.Registry
	cli      *cli.App
}

// NewApp opens the store, applies migrations and builds the CLI on top of
// the services. in is the command stream; interactive enables the banner
// and prompt.
func NewApp(ctx context.Context, c *config.Config, in io.Reader, interactive bool) (*App, error) {
	logger, logFile, err := newLogger(c)
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}
	logger.Info(ctx, "starting scheduler", buildinfo.Fields()...)

	db, err := dbx.Open(ctx, c.DBDriver, c.DatabaseDSN, c.ConnectTimeout)
	if err != nil {
		closeQuietly(logFile)
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm, err := repomanager.NewRepositoryManager(c.DBDriver, logger)
	if err != nil {
		_ = db.Close()
		closeQuietly(logFile)
		return nil, err
	}
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		closeQuietly(logFile)
		return nil, err
	}

	reg := prometheus.NewRegistry()
	rec := metrics.NewCollector(reg)

	svc := cli.Services{
		Accounts:     services.NewAccountService(db, rm, logger),
		Inventory:    services.NewInventoryService(db, rm, logger),
		Availability: services.NewAvailabilityService(db, rm, logger),
		Schedule:     services.NewScheduleService(db, rm, logger),
		Appointments: services.NewAppointmentService(db, rm, logger),
		Reservations: services.NewReservationService(db, rm, logger, rec),
	}

	return &App{
		config:   c,
		logger:   logger,
		logFile:  logFile,
		db:       db,
		registry: reg,
		cli:      cli.NewApp(svc, logger, rec, in, interactive),
	}, nil
}

// newLogger writes JSON records to the configured log file, or to stderr
// so stdout stays reserved for outcome lines.
func newLogger(c *config.Config) (logging.Logger, io.Closer, error) {
	if c.LogFile == "" {
		return logging.NewJSONLogger(os.Stderr, c.LogLevel), nil, nil
	}
	if err := filex.EnsureParentDir(c.LogFile); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return logging.NewJSONLogger(f, c.LogLevel), f, nil
}

func closeQuietly(c io.Closer) {
	if c != nil {
		_ = c.Close()
	}
}

func (app *App) initSignalHandler(ctx context.Context, cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		defer signal.Stop(sigs)
		select {
		case <-sigs:
			cancelFunc()
		case <-ctx.Done():
		}
	}()
}

func (app *App) startMetricsServer(ctx context.Context) {
	app.logger.Info(ctx, "serving metrics", "addr", app.config.MetricsAddr)
	if err := metrics.Serve(ctx, app.config.MetricsAddr, app.registry); err != nil {
		app.logger.Error(ctx, "metrics server stopped", "error", err)
	}
}

// Run blocks until the CLI ends, then stops the metrics endpoint and
// releases the store.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.initSignalHandler(ctx, cancelFunc)

	var wg sync.WaitGroup
	if app.config.MetricsAddr != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			app.startMetricsServer(ctx)
		}()
	}

	app.cli.Run(ctx)

	cancelFunc()
	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Warn(ctx, "db close error", "error", err)
	}
	app.logger.Info(ctx, "scheduler stopped")
	closeQuietly(app.logFile)
}
