package cli

import (
	"bufio"
	"context"
	"io"

	"github.com/dmitrijs2005/vaxscheduler/internal/logging"
	"github.com/dmitrijs2005/vaxscheduler/internal/metrics"
	"github.com/dmitrijs2005/vaxscheduler/internal/models"
	"github.com/dmitrijs2005/vaxscheduler/internal/session"
)

type accountService interface {
	Register(ctx context.Context, role models.Role, userName string, password []byte) error
	Login(ctx context.Context, sess *session.Session, role models.Role, userName string, password []byte) error
	Logout(ctx context.Context, sess *session.Session) error
}

type inventoryService interface {
	AddDoses(ctx context.Context, sess *session.Session, vaccine string, count int) error
}

type availabilityService interface {
	Upload(ctx context.Context, sess *session.Session, date string) error
}

type scheduleService interface {
	Search(ctx context.Context, sess *session.Session, date string) ([]models.ScheduleRow, error)
}

type appointmentService interface {
	List(ctx context.Context, sess *session.Session) ([]models.AppointmentView, error)
	Cancel(ctx context.Context, sess *session.Session, appointmentID string) error
}

type reservationService interface {
	Reserve(ctx context.Context, sess *session.Session, date, vaccine string) (*models.Reservation, error)
}

// Services bundles what the CLI calls into. *services.XxxService values
// satisfy the field types.
type Services struct {
	Accounts     accountService
	Inventory    inventoryService
	Availability availabilityService
	Schedule     scheduleService
	Appointments appointmentService
	Reservations reservationService
}

type App struct {
	sess        *session.Session
	svc         Services
	logger      logging.Logger
	metrics     metrics.Recorder
	in          io.Reader
	interactive bool
}

// NewApp creates an App with a fresh logged-out session reading commands
// from in. When interactive is set the banner and prompt are shown.
func NewApp(svc Services, logger logging.Logger, rec metrics.Recorder, in io.Reader, interactive bool) *App {
	if rec == nil {
		rec = metrics.Nop{}
	}
	return &App{
		sess:        session.New(),
		svc:         svc,
		logger:      logger,
		metrics:     rec,
		in:          in,
		interactive: interactive,
	}
}

// Run blocks until quit, end of input or ctx cancellation.
func (a *App) Run(ctx context.Context) {
	if a.interactive {
		printBanner()
	}

	prompt := func() string { return "" }
	if a.interactive {
		prompt = func() string { return "> " }
	}

	runREPL(ctx, a, prompt, bufio.NewScanner(a.in))
}

func (a *App) isLoggedIn() bool {
	return a.sess.LoggedIn()
}

// observe records the command outcome and logs the cause of a failure.
func (a *App) observe(ctx context.Context, command string, err error) {
	a.metrics.RecordCommand(command, outcomeLabel(err))
	if err == nil {
		return
	}
	if isExpected(err) {
		a.logger.Debug(ctx, "command rejected", "command", command, "error", err)
		return
	}
	a.logger.Error(ctx, "command failed", "command", command, "error", err)
}
