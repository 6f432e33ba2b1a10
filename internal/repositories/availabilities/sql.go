package availabilities

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

func (r *SQLRepository) Create(ctx context.Context, caregiver, date string) error {
	query :=
		`INSERT INTO availabilities (caregiver, slot_date) VALUES ($1, $2)
		 ON CONFLICT DO NOTHING
		 `

	res, err := r.db.ExecContext(ctx, query, caregiver, date)
	if err != nil {
		return fmt.Errorf("db error: %w", dbx.Classify(err))
	}
	ok, err := dbx.RowsAffectedOne(res)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if !ok {
		return common.ErrDuplicateSlot
	}
	return nil
}

func (r *SQLRepository) FirstAvailable(ctx context.Context, date string) (string, error) {
	query :=
		`SELECT caregiver FROM availabilities
		 WHERE slot_date = $1
		 ORDER BY caregiver ASC
		 LIMIT 1
		 `

	var caregiver string
	if err := r.db.QueryRowContext(ctx, query, date).Scan(&caregiver); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", common.ErrorNotFound
		}
		return "", fmt.Errorf("db error: %w", dbx.Classify(err))
	}
	return caregiver, nil
}

func (r *SQLRepository) Claim(ctx context.Context, caregiver, date string) error {
	query := `DELETE FROM availabilities WHERE caregiver = $1 AND slot_date = $2`

	res, err := r.db.ExecContext(ctx, query, caregiver, date)
	if err != nil {
		return fmt.Errorf("db error: %w", dbx.Classify(err))
	}
	ok, err := dbx.RowsAffectedOne(res)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if !ok {
		return fmt.Errorf("slot (%s, %s) already claimed: %w", caregiver, date, common.ErrConflict)
	}
	return nil
}

func (r *SQLRepository) Restore(ctx context.Context, caregiver, date string) error {
	query :=
		`INSERT INTO availabilities (caregiver, slot_date) VALUES ($1, $2)
		 ON CONFLICT DO NOTHING
		 `

	if _, err := r.db.ExecContext(ctx, query, caregiver, date); err != nil {
		return fmt.Errorf("db error: %w", dbx.Classify(err))
	}
	return nil
}

func (r *SQLRepository) Schedule(ctx context.Context, date string) ([]models.ScheduleRow, error) {
	query :=
		`SELECT a.caregiver, v.name, v.doses
		 FROM availabilities AS a CROSS JOIN vaccines AS v
		 WHERE a.slot_date = $1
		 ORDER BY a.caregiver ASC, v.name ASC
		 `

	rows, err := r.db.QueryContext(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var out []models.ScheduleRow
	for rows.Next() {
		var s models.ScheduleRow
		if err := rows.Scan(&s.Caregiver, &s.Vaccine, &s.Doses); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
