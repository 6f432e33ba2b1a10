// Package availabilities stores the dates caregivers offer for appointments.
package availabilities

import (
	"context"

	"github.com/dmitrijs2005/vaxscheduler/internal/models"
)

// Repository describes caregiver availability slots keyed by (caregiver, date).
type Repository interface {
	// Create publishes a slot. It returns common.ErrDuplicateSlot if the
	// caregiver already offers that date.
	Create(ctx context.Context, caregiver, date string) error

	// FirstAvailable returns the lowest caregiver username with an open slot
	// on date, or common.ErrorNotFound.
	FirstAvailable(ctx context.Context, date string) (string, error)

	// Claim removes the slot, provided it still exists at write time.
	// It returns common.ErrConflict otherwise.
	Claim(ctx context.Context, caregiver, date string) error

	// Restore puts a slot back. Restoring an existing slot is a no-op.
	Restore(ctx context.Context, caregiver, date string) error

	// Schedule pairs every caregiver free on date with every known vaccine,
	// ordered by caregiver, then vaccine.
	Schedule(ctx context.Context, date string) ([]models.ScheduleRow, error)
}
