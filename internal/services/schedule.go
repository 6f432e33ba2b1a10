package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/vaxscheduler/internal/logging"
	"github.com/dmitrijs2005/vaxscheduler/internal/models"
	"github.com/dmitrijs2005/vaxscheduler/internal/repositories/repomanager"
	"github.com/dmitrijs2005/vaxscheduler/internal/session"
)

// ScheduleService answers "who can vaccinate me on this date, with what".
type ScheduleService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
}

func NewScheduleService(db *sql.DB, m repomanager.RepositoryManager, logger logging.Logger) *ScheduleService {
	return &ScheduleService{db: db, repomanager: m, logger: logger}
}

// Search lists caregivers free on date against every known vaccine, ordered
// by caregiver username. An empty slice with a nil error means nobody is
// available.
func (s *ScheduleService) Search(ctx context.Context, sess *session.Session, date string) ([]models.ScheduleRow, error) {
	if _, err := sess.RequireAny(); err != nil {
		return nil, err
	}
	if err := ValidateDate(date); err != nil {
		return nil, err
	}

	rows, err := s.repomanager.Availabilities(s.db).Schedule(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("error searching schedule: %w", err)
	}
	return rows, nil
}
