package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/vaxscheduler/internal/common"
	"github.com/dmitrijs2005/vaxscheduler/internal/dbx"
	"github.com/dmitrijs2005/vaxscheduler/internal/logging"
	"github.com/dmitrijs2005/vaxscheduler/internal/metrics"
	"github.com/dmitrijs2005/vaxscheduler/internal/models"
	"github.com/dmitrijs2005/vaxscheduler/internal/repositories/repomanager"
	"github.com/dmitrijs2005/vaxscheduler/internal/session"
	"github.com/google/uuid"
)

// newAppointmentID is a seam for tests.
var newAppointmentID = func() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// ReservationService books appointments.
type ReservationService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
	metrics     metrics.Recorder
}

func NewReservationService(db *sql.DB, m repomanager.RepositoryManager, logger logging.Logger, rec metrics.Recorder) *ReservationService {
	if rec == nil {
		rec = metrics.Nop{}
	}
	return &ReservationService{db: db, repomanager: m, logger: logger, metrics: rec}
}

// Reserve books vaccine on date for the logged-in patient with the
// available caregiver whose username sorts first.
//
// Slot removal, dose decrement and appointment insert happen in one
// transaction. The slot delete and the dose decrement are conditional on
// the row still qualifying at write time, so a concurrent reserve that got
// there first makes this one fail with common.ErrConflict or
// common.ErrOutOfStock and roll back. Nothing is retried.
func (s *ReservationService) Reserve(ctx context.Context, sess *session.Session, date, vaccine string) (res *models.Reservation, err error) {
	id, err := sess.RequireRole(models.RolePatient)
	if err != nil {
		return nil, err
	}
	if err := ValidateDate(date); err != nil {
		return nil, err
	}
	if vaccine == "" {
		return nil, common.ErrValidation
	}

	start := time.Now()
	defer func() {
		s.metrics.RecordReserveLatency(time.Since(start))
		s.metrics.RecordReservation(Outcome(err))
	}()

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		caregiver, err := s.repomanager.Availabilities(tx).FirstAvailable(ctx, date)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return common.ErrNoCaregiverAvailable
			}
			return err
		}

		v, err := s.repomanager.Vaccines(tx).Get(ctx, vaccine)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return common.ErrUnknownVaccine
			}
			return err
		}
		if v.Doses < 1 {
			return common.ErrOutOfStock
		}

		if err := s.repomanager.Availabilities(tx).Claim(ctx, caregiver, date); err != nil {
			return err
		}
		if err := s.repomanager.Vaccines(tx).Decrement(ctx, vaccine); err != nil {
			return err
		}

		appointmentID, err := newAppointmentID()
		if err != nil {
			return fmt.Errorf("error generating appointment id: %w", err)
		}

		a := &models.Appointment{
			ID:        appointmentID,
			Date:      date,
			Vaccine:   vaccine,
			Patient:   id.UserName,
			Caregiver: caregiver,
		}
		if err := s.repomanager.Appointments(tx).Create(ctx, a); err != nil {
			return err
		}

		res = &models.Reservation{AppointmentID: appointmentID, Caregiver: caregiver}
		return nil
	})
	if err != nil {
		res = nil
		s.logger.Warn(ctx, "reservation failed", "patient", id.UserName, "date", date, "vaccine", vaccine, "error", err)
		return nil, err
	}

	s.logger.Info(ctx, "reservation created",
		"appointment_id", res.AppointmentID, "caregiver", res.Caregiver,
		"patient", id.UserName, "date", date, "vaccine", vaccine)
	return res, nil
}
