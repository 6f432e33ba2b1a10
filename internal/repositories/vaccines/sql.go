package vaccines

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/vaxscheduler/internal/common"
	"github.com/dmitrijs2005/vaxscheduler/internal/dbx"
	"github.com/dmitrijs2005/vaxscheduler/internal/models"
)

type SQLRepository struct {
	db dbx.DBTX
}

func NewSQLRepository(db dbx.DBTX) *SQLRepository {
	return &SQLRepository{db: db}
}

func (r *SQLRepository) Get(ctx context.Context, name string) (*models.Vaccine, error) {
	query := `SELECT name, doses FROM vaccines WHERE name = $1`

	v := &models.Vaccine{}
	if err := r.db.QueryRowContext(ctx, query, name).Scan(&v.Name, &v.Doses); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", dbx.Classify(err))
	}
	return v, nil
}

func (r *SQLRepository) AddDoses(ctx context.Context, name string, n int) error {
	if n < 0 {
		return common.ErrValidation
	}

	query :=
		`INSERT INTO vaccines (name, doses) VALUES ($1, $2)
		 ON CONFLICT (name) DO UPDATE SET doses = vaccines.doses + excluded.doses
		 `

	if _, err := r.db.ExecContext(ctx, query, name, n); err != nil {
		return fmt.Errorf("db error: %w", dbx.Classify(err))
	}
	return nil
}

func (r *SQLRepository) Decrement(ctx context.Context, name string) error {
	query := `UPDATE vaccines SET doses = doses - 1 WHERE name = $1 AND doses >= 1`

	res, err := r.db.ExecContext(ctx, query, name)
	if err != nil {
		return fmt.Errorf("db error: %w", dbx.Classify(err))
	}
	ok, err := dbx.RowsAffectedOne(res)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if !ok {
		return common.ErrOutOfStock
	}
	return nil
}
