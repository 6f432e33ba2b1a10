// Package vaccines stores the vaccine inventory: vaccine name to remaining doses.
package vaccines

import (
	"context"

	"github.com/dmitrijs2005/vaxscheduler/internal/models"
)

// Repository describes inventory operations. Dose counts never go below zero.
type Repository interface {
	// Get returns the vaccine or common.ErrorNotFound.
	Get(ctx context.Context, name string) (*models.Vaccine, error)

	// AddDoses creates the vaccine with n doses or adds n to its balance.
	AddDoses(ctx context.Context, name string, n int) error

	// Decrement takes one dose, provided at least one is left at write time.
	// It returns common.ErrOutOfStock otherwise.
	Decrement(ctx context.Context, name string) error
}
