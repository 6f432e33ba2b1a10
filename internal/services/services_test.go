package services

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/vaxscheduler/internal/dbx"
	"github.com/dmitrijs2005/vaxscheduler/internal/logging"
	"github.com/dmitrijs2005/vaxscheduler/internal/metrics"
	"github.com/dmitrijs2005/vaxscheduler/internal/models"
	"github.com/dmitrijs2005/vaxscheduler/internal/repositories/repomanager"
	"github.com/dmitrijs2005/vaxscheduler/internal/session"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	db           *sql.DB
	rm           repomanager.RepositoryManager
	accounts     *AccountService
	inventory    *InventoryService
	availability *AvailabilityService
	schedule     *ScheduleService
	appointments *AppointmentService
	reservations *ReservationService
}

func sqliteDSN(path string) string {
	return "file:" + path + "?_pragma=busy_timeout(5000)&_txlock=immediate"
}

func openStore(t *testing.T, path string) *sql.DB {
	t.Helper()
	db, err := dbx.Open(context.Background(), dbx.DriverSQLite, sqliteDSN(path), 5*time.Second)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func newEnvOn(t *testing.T, db *sql.DB, rec metrics.Recorder) *testEnv {
	t.Helper()
	rm, err := repomanager.NewRepositoryManager(dbx.DriverSQLite, logging.Nop())
	require.NoError(t, err)
	require.NoError(t, rm.RunMigrations(context.Background(), db))

	log := logging.Nop()
	return &testEnv{
		db:           db,
		rm:           rm,
		accounts:     NewAccountService(db, rm, log),
		inventory:    NewInventoryService(db, rm, log),
		availability: NewAvailabilityService(db, rm, log),
		schedule:     NewScheduleService(db, rm, log),
		appointments: NewAppointmentService(db, rm, log),
		reservations: NewReservationService(db, rm, log, rec),
	}
}

func newEnv(t *testing.T) *testEnv {
	t.Helper()
	db := openStore(t, filepath.Join(t.TempDir(), "scheduler.db"))
	return newEnvOn(t, db, nil)
}

func (e *testEnv) register(t *testing.T, role models.Role, user, password string) {
	t.Helper()
	require.NoError(t, e.accounts.Register(context.Background(), role, user, []byte(password)))
}

func (e *testEnv) login(t *testing.T, role models.Role, user, password string) *session.Session {
	t.Helper()
	sess := session.New()
	require.NoError(t, e.accounts.Login(context.Background(), sess, role, user, []byte(password)))
	return sess
}

// caregiverOffers registers a caregiver that offers date and stocks vaccine.
func (e *testEnv) caregiverOffers(t *testing.T, caregiver, date, vaccine string, doses int) {
	t.Helper()
	ctx := context.Background()
	e.register(t, models.RoleCaregiver, caregiver, "pw")
	sess := e.login(t, models.RoleCaregiver, caregiver, "pw")
	require.NoError(t, e.availability.Upload(ctx, sess, date))
	require.NoError(t, e.inventory.AddDoses(ctx, sess, vaccine, doses))
}

func (e *testEnv) doses(t *testing.T, vaccine string) int {
	t.Helper()
	v, err := e.rm.Vaccines(e.db).Get(context.Background(), vaccine)
	require.NoError(t, err)
	return v.Doses
}

// freeCaregivers returns the caregivers with an open slot on date.
func (e *testEnv) freeCaregivers(t *testing.T, date string) []string {
	t.Helper()
	rows, err := e.db.QueryContext(context.Background(),
		`SELECT caregiver FROM availabilities WHERE slot_date = $1 ORDER BY caregiver`, date)
	require.NoError(t, err)
	defer rows.Close()

	var out []string
	for rows.Next() {
		var c string
		require.NoError(t, rows.Scan(&c))
		out = append(out, c)
	}
	require.NoError(t, rows.Err())
	return out
}
