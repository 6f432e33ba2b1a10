// Package session tracks the identity logged in to one CLI process.
//
// A Session is either logged out or logged in as exactly one patient or
// caregiver. It is created by the CLI and passed explicitly to every
// service call that needs an identity.
package session

import (
	"sync"

	"github.com/dmitrijs2005/vaxscheduler/internal/common"
	"github.com/dmitrijs2005/vaxscheduler/internal/models"
)

// Identity is a logged-in account.
type Identity struct {
	Role     models.Role
	UserName string
}

type Session struct {
	mu      sync.RWMutex
	current *Identity
}

func New() *Session {
	return &Session{}
}

// Login moves the session to LoggedIn. It fails with
// common.ErrAlreadyLoggedIn if somebody is logged in already.
func (s *Session) Login(role models.Role, userName string) error {
	if !role.Valid() {
		return common.ErrValidation
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current != nil {
		return common.ErrAlreadyLoggedIn
	}
	s.current = &Identity{Role: role, UserName: userName}
	return nil
}

// Logout moves the session back to LoggedOut.
func (s *Session) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return common.ErrNotLoggedIn
	}
	s.current = nil
	return nil
}

// Current returns the logged-in identity and whether there is one.
func (s *Session) Current() (Identity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return Identity{}, false
	}
	return *s.current, true
}

func (s *Session) LoggedIn() bool {
	_, ok := s.Current()
	return ok
}

// RequireAny returns the current identity or common.ErrNotLoggedIn.
func (s *Session) RequireAny() (Identity, error) {
	id, ok := s.Current()
	if !ok {
		return Identity{}, common.ErrNotLoggedIn
	}
	return id, nil
}

// RequireRole returns the current identity if it has the given role.
// Anonymous sessions get common.ErrNotLoggedIn, other roles common.ErrWrongRole.
func (s *Session) RequireRole(role models.Role) (Identity, error) {
	id, err := s.RequireAny()
	if err != nil {
		return Identity{}, err
	}
	if id.Role != role {
		return Identity{}, common.ErrWrongRole
	}
	return id, nil
}
