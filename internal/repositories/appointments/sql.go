package appointments

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

// partyColumns returns the column matching role and the counterpart column.
func partyColumns(role models.Role) (self, other string, err error) {
	switch role {
	case models.RolePatient:
		return "patient", "caregiver", nil
	case models.RoleCaregiver:
		return "caregiver", "patient", nil
	}
	return "", "", fmt.Errorf("unknown role %q: %w", role, common.ErrValidation)
}

func (r *SQLRepository) Create(ctx context.Context, a *models.Appointment) error {
	query :=
		`INSERT INTO appointments (id, slot_date, vaccine, patient, caregiver)
		 VALUES ($1, $2, $3, $4, $5)
		 `

	if _, err := r.db.ExecContext(ctx, query, a.ID, a.Date, a.Vaccine, a.Patient, a.Caregiver); err != nil {
		return fmt.Errorf("db error: %w", dbx.Classify(err))
	}
	return nil
}

func (r *SQLRepository) Get(ctx context.Context, id string) (*models.Appointment, error) {
	query :=
		`SELECT id, slot_date, vaccine, patient, caregiver FROM appointments
		 WHERE id = $1
		 `

	a := &models.Appointment{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&a.ID, &a.Date, &a.Vaccine, &a.Patient, &a.Caregiver)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return a, nil
}

func (r *SQLRepository) Booked(ctx context.Context, caregiver, date string) (bool, error) {
	query := `SELECT COUNT(*) FROM appointments WHERE caregiver = $1 AND slot_date = $2`

	var n int
	if err := r.db.QueryRowContext(ctx, query, caregiver, date).Scan(&n); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return n > 0, nil
}

func (r *SQLRepository) ListFor(ctx context.Context, role models.Role, userName string) ([]models.AppointmentView, error) {
	self, other, err := partyColumns(role)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(
		`SELECT id, vaccine, slot_date, %s FROM appointments
		 WHERE %s = $1
		 ORDER BY id ASC
		 `, other, self)

	rows, err := r.db.QueryContext(ctx, query, userName)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var out []models.AppointmentView
	for rows.Next() {
		var v models.AppointmentView
		if err := rows.Scan(&v.ID, &v.Vaccine, &v.Date, &v.Counterpart); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r *SQLRepository) DeleteFor(ctx context.Context, id string, role models.Role, userName string) (*models.Appointment, error) {
	self, _, err := partyColumns(role)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(
		`DELETE FROM appointments
		 WHERE id = $1 AND %s = $2
		 RETURNING id, slot_date, vaccine, patient, caregiver
		 `, self)

	a := &models.Appointment{}
	err = r.db.QueryRowContext(ctx, query, id, userName).Scan(&a.ID, &a.Date, &a.Vaccine, &a.Patient, &a.Caregiver)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("db error: %w", dbx.Classify(err))
	}
	return a, nil
}
