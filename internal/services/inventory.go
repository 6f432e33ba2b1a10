package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/vaxscheduler/internal/common"
	"github.com/dmitrijs2005/vaxscheduler/internal/logging"
	"github.com/dmitrijs2005/vaxscheduler/internal/models"
	"github.com/dmitrijs2005/vaxscheduler/internal/repositories/repomanager"
	"github.com/dmitrijs2005/vaxscheduler/internal/session"
)

// InventoryService tops up vaccine stock.
type InventoryService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
}

func NewInventoryService(db *sql.DB, m repomanager.RepositoryManager, logger logging.Logger) *InventoryService {
	return &InventoryService{db: db, repomanager: m, logger: logger}
}

// AddDoses creates the vaccine with count doses, or adds count to its
// balance. Caregivers only; count must not be negative.
func (s *InventoryService) AddDoses(ctx context.Context, sess *session.Session, vaccine string, count int) error {
	id, err := sess.RequireRole(models.RoleCaregiver)
	if err != nil {
		return err
	}
	if vaccine == "" || count < 0 {
		return common.ErrValidation
	}

	if err := s.repomanager.Vaccines(s.db).AddDoses(ctx, vaccine, count); err != nil {
		return fmt.Errorf("error adding doses: %w", err)
	}

	s.logger.Info(ctx, "doses added", "vaccine", vaccine, "count", count, "caregiver", id.UserName)
	return nil
}
