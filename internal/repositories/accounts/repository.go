package accounts

import (
	"context"

	"github.com/dmitrijs2005/vaxscheduler/internal/models"
)

// Repository persists patient and caregiver credentials.
type Repository interface {
	// Create inserts a new account. It returns common.ErrUsernameTaken when
	// the username already exists in the account's namespace.
	Create(ctx context.Context, account *models.Account) error

	// Get returns the account or common.ErrorNotFound.
	Get(ctx context.Context, role models.Role, userName string) (*models.Account, error)

	// Exists reports whether the username is registered under role.
	Exists(ctx context.Context, role models.Role, userName string) (bool, error)
}
