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

// AvailabilityService publishes caregiver availability.
type AvailabilityService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
}

func NewAvailabilityService(db *sql.DB, m repomanager.RepositoryManager, logger logging.Logger) *AvailabilityService {
	return &AvailabilityService{db: db, repomanager: m, logger: logger}
}

// Upload offers date for the logged-in caregiver. A date the caregiver
// already offers, or already has an appointment on, is rejected with
// common.ErrDuplicateSlot.
func (s *AvailabilityService) Upload(ctx context.Context, sess *session.Session, date string) error {
	id, err := sess.RequireRole(models.RoleCaregiver)
	if err != nil {
		return err
	}
	if err := ValidateDate(date); err != nil {
		return err
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		booked, err := s.repomanager.Appointments(tx).Booked(ctx, id.UserName, date)
		if err != nil {
			return err
		}
		if booked {
			return common.ErrDuplicateSlot
		}
		return s.repomanager.Availabilities(tx).Create(ctx, id.UserName, date)
	})
	if err != nil {
		if errors.Is(err, common.ErrDuplicateSlot) {
			return err
		}
		return fmt.Errorf("error uploading availability: %w", err)
	}

	s.logger.Info(ctx, "availability uploaded", "caregiver", id.UserName, "date", date)
	return nil
}
