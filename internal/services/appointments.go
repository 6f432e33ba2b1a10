package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/vaxscheduler/internal/common"
	"github.com/dmitrijs2005/vaxscheduler/internal/dbx"
	"github.com/dmitrijs2005/vaxscheduler/internal/logging"
	"github.com/dmitrijs2005/vaxscheduler/internal/models"
	"github.com/dmitrijs2005/vaxscheduler/internal/repositories/repomanager"
	"github.com/dmitrijs2005/vaxscheduler/internal/session"
)

// AppointmentService lists and cancels booked appointments.
type AppointmentService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
}

func NewAppointmentService(db *sql.DB, m repomanager.RepositoryManager, logger logging.Logger) *AppointmentService {
	return &AppointmentService{db: db, repomanager: m, logger: logger}
}

// List returns the caller's appointments ordered by id.
func (s *AppointmentService) List(ctx context.Context, sess *session.Session) ([]models.AppointmentView, error) {
	id, err := sess.RequireAny()
	if err != nil {
		return nil, err
	}

	items, err := s.repomanager.Appointments(s.db).ListFor(ctx, id.Role, id.UserName)
	if err != nil {
		return nil, fmt.Errorf("error listing appointments: %w", err)
	}
	return items, nil
}

// Cancel removes an appointment the caller is a party to, then gives the
// slot back to the caregiver and the dose back to the inventory.
func (s *AppointmentService) Cancel(ctx context.Context, sess *session.Session, appointmentID string) error {
	id, err := sess.RequireAny()
	if err != nil {
		return err
	}
	if appointmentID == "" {
		return common.ErrValidation
	}

	var removed *models.Appointment
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		a, err := s.repomanager.Appointments(tx).DeleteFor(ctx, appointmentID, id.Role, id.UserName)
		if err != nil {
			return err
		}
		if err := s.repomanager.Availabilities(tx).Restore(ctx, a.Caregiver, a.Date); err != nil {
			return err
		}
		if err := s.repomanager.Vaccines(tx).AddDoses(ctx, a.Vaccine, 1); err != nil {
			return err
		}
		removed = a
		return nil
	})
	if err != nil {
		if errors.Is(err, common.ErrAppointmentNotFound) {
			return err
		}
		return fmt.Errorf("error cancelling appointment: %w", err)
	}

	s.logger.Info(ctx, "appointment cancelled",
		"appointment_id", removed.ID, "caregiver", removed.Caregiver,
		"patient", removed.Patient, "by", id.UserName)
	return nil
}
