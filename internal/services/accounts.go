// Package services contains the scheduler's business logic. Every operation
// that needs an identity takes the caller's session explicitly and checks it
// before touching the store.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/vaxscheduler/internal/common"
	"github.com/dmitrijs2005/vaxscheduler/internal/cryptox"
	"github.com/dmitrijs2005/vaxscheduler/internal/logging"
	"github.com/dmitrijs2005/vaxscheduler/internal/models"
	"github.com/dmitrijs2005/vaxscheduler/internal/repositories/repomanager"
	"github.com/dmitrijs2005/vaxscheduler/internal/session"
)

// AccountService handles registration and login for both namespaces.
type AccountService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
}

func NewAccountService(db *sql.DB, m repomanager.RepositoryManager, logger logging.Logger) *AccountService {
	return &AccountService{db: db, repomanager: m, logger: logger}
}

// Register creates an account with a fresh salt and argon2id hash.
// It does not log the new user in. Taken usernames are rejected before
// hashing; the unique key still catches a concurrent registration.
func (s *AccountService) Register(ctx context.Context, role models.Role, userName string, password []byte) error {
	if !role.Valid() || userName == "" || len(password) == 0 {
		return common.ErrValidation
	}

	repo := s.repomanager.Accounts(s.db)
	taken, err := repo.Exists(ctx, role, userName)
	if err != nil {
		return fmt.Errorf("error checking username: %w", err)
	}
	if taken {
		return common.ErrUsernameTaken
	}

	salt := cryptox.NewSalt()
	account := &models.Account{
		Role:     role,
		UserName: userName,
		Salt:     salt,
		Hash:     cryptox.HashPassword(password, salt),
	}

	if err := repo.Create(ctx, account); err != nil {
		if errors.Is(err, common.ErrUsernameTaken) {
			return err
		}
		return fmt.Errorf("error creating user: %w", err)
	}

	s.logger.Info(ctx, "account created", "role", role, "username", userName)
	return nil
}

// Login verifies the credentials and moves sess to LoggedIn. Unknown users
// and wrong passwords both yield common.ErrorUnauthorized.
func (s *AccountService) Login(ctx context.Context, sess *session.Session, role models.Role, userName string, password []byte) error {
	if sess.LoggedIn() {
		return common.ErrAlreadyLoggedIn
	}
	if !role.Valid() || userName == "" {
		return common.ErrValidation
	}

	account, err := s.repomanager.Accounts(s.db).Get(ctx, role, userName)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorUnauthorized
		}
		return fmt.Errorf("error loading user: %w", err)
	}

	if !cryptox.VerifyPassword(password, account.Salt, account.Hash) {
		s.logger.Warn(ctx, "login rejected", "role", role, "username", userName)
		return common.ErrorUnauthorized
	}

	if err := sess.Login(role, userName); err != nil {
		return err
	}
	s.logger.Info(ctx, "logged in", "role", role, "username", userName)
	return nil
}

// Logout clears sess.
func (s *AccountService) Logout(ctx context.Context, sess *session.Session) error {
	id, ok := sess.Current()
	if err := sess.Logout(); err != nil {
		return err
	}
	if ok {
		s.logger.Info(ctx, "logged out", "role", id.Role, "username", id.UserName)
	}
	return nil
}
