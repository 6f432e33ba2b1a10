package vaccines

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/vaxscheduler/internal/common"
	"github.com/dmitrijs2005/vaxscheduler/internal/models"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepoWithMock(t *testing.T) (*SQLRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewSQLRepository(db), mock
}

const (
	getQ       = `^SELECT name, doses FROM vaccines WHERE name = \$1$`
	upsertQ    = `(?s)^INSERT\s+INTO\s+vaccines\s*\(name,\s*doses\)\s*VALUES\s*\(\$1,\s*\$2\)\s*ON\s+CONFLICT\s*\(name\)\s*DO\s+UPDATE\s+SET\s+doses\s*=\s*vaccines\.doses\s*\+\s*excluded\.doses\s*$`
	decrementQ = `^UPDATE vaccines SET doses = doses - 1 WHERE name = \$1 AND doses >= 1$`
)

func TestGet(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(getQ).WithArgs("pfizer").
		WillReturnRows(sqlmock.NewRows([]string{"name", "doses"}).AddRow("pfizer", 5))
	mock.ExpectQuery(getQ).WithArgs("sputnik").WillReturnError(sql.ErrNoRows)

	v, err := repo.Get(context.Background(), "pfizer")
	require.NoError(t, err)
	assert.Equal(t, &models.Vaccine{Name: "pfizer", Doses: 5}, v)

	_, err = repo.Get(context.Background(), "sputnik")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestAddDoses(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(upsertQ).WithArgs("pfizer", 5).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(upsertQ).WithArgs("moderna", 0).WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.AddDoses(context.Background(), "pfizer", 5))
	require.NoError(t, repo.AddDoses(context.Background(), "moderna", 0))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAddDoses_NegativeRejectedWithoutQuery(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	err := repo.AddDoses(context.Background(), "pfizer", -1)
	require.ErrorIs(t, err, common.ErrValidation)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDecrement(t *testing.T) {
	tests := []struct {
		name    string
		result  sql.Result
		err     error
		wantErr error
	}{
		{name: "one dose taken", result: sqlmock.NewResult(0, 1)},
		{name: "no dose left", result: sqlmock.NewResult(0, 0), wantErr: common.ErrOutOfStock},
		{name: "serialization failure", err: &pgconn.PgError{Code: "40001"}, wantErr: common.ErrConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newRepoWithMock(t)
			exp := mock.ExpectExec(decrementQ).WithArgs("pfizer")
			if tt.err != nil {
				exp.WillReturnError(tt.err)
			} else {
				exp.WillReturnResult(tt.result)
			}

			err := repo.Decrement(context.Background(), "pfizer")
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}
