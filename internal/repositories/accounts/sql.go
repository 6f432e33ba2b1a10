// Package accounts stores patient and caregiver accounts.
package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/vaxscheduler/internal/common"
	"github.com/dmitrijs2005/vaxscheduler/internal/dbx"
	"github.com/dmitrijs2005/vaxscheduler/internal/models"
)

// SQLRepository implements Repository on top of a DBTX. The SQL is shared
// by the PostgreSQL and SQLite backends.
type SQLRepository struct {
	db dbx.DBTX
}

func NewSQLRepository(db dbx.DBTX) *SQLRepository {
	return &SQLRepository{db: db}
}

func (r *SQLRepository) Create(ctx context.Context, a *models.Account) error {
	query :=
		`INSERT INTO accounts (role, username, salt, hash)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT DO NOTHING
		 `

	res, err := r.db.ExecContext(ctx, query, string(a.Role), a.UserName, a.Salt, a.Hash)
	if err != nil {
		return fmt.Errorf("db error: %w", dbx.Classify(err))
	}

	ok, err := dbx.RowsAffectedOne(res)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if !ok {
		return common.ErrUsernameTaken
	}
	return nil
}

func (r *SQLRepository) Get(ctx context.Context, role models.Role, userName string) (*models.Account, error) {
	query :=
		`SELECT role, username, salt, hash FROM accounts
		 WHERE role = $1 AND username = $2
		 `

	var (
		a       models.Account
		roleStr string
	)
	err := r.db.QueryRowContext(ctx, query, string(role), userName).Scan(&roleStr, &a.UserName, &a.Salt, &a.Hash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	a.Role = models.Role(roleStr)
	return &a, nil
}

func (r *SQLRepository) Exists(ctx context.Context, role models.Role, userName string) (bool, error) {
	query :=
		`SELECT COUNT(*) FROM accounts
		 WHERE role = $1 AND username = $2
		 `

	var n int
	if err := r.db.QueryRowContext(ctx, query, string(role), userName).Scan(&n); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return n > 0, nil
}
