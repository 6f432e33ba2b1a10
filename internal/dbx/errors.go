package dbx

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/vaxscheduler/internal/common"
	"github.com/jackc/pgx/v5/pgconn"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// Postgres SQLSTATE codes that mean "another transaction won". Unique and
// check violations only reach us from writes guarded by the schema
// (appointment slot uniqueness, non-negative doses), where they too mean a
// concurrent writer got there first.
const (
	pgUniqueViolation      = "23505"
	pgCheckViolation       = "23514"
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
	pgLockNotAvailable     = "55P03"
)

// Classify maps driver errors that signal a lost concurrent race to
// common.ErrConflict, keeping the driver error in the chain for logging.
// Nil and already-classified errors are returned unchanged.
func Classify(err error) error {
	if err == nil || errors.Is(err, common.ErrConflict) {
		return err
	}
	if isConflict(err) {
		return fmt.Errorf("%w: %w", common.ErrConflict, err)
	}
	return err
}

func isConflict(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation, pgCheckViolation,
			pgSerializationFailure, pgDeadlockDetected, pgLockNotAvailable:
			return true
		}
		return false
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		switch liteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3.SQLITE_CONSTRAINT_CHECK:
			return true
		}
		// extended result codes keep the primary code in the low byte
		switch liteErr.Code() & 0xff {
		case sqlite3.SQLITE_BUSY, sqlite3.SQLITE_LOCKED:
			return true
		}
	}
	return false
}
