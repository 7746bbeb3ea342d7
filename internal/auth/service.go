// Package auth provides the session gate: a fixed credential table and
// in-memory bearer sessions standing in for a real identity backend.
package auth

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	orderrors "github.com/odmng/orderdesk/internal/errors"
	"github.com/odmng/orderdesk/internal/store"
)

// User is the authenticated identity. The password never leaves this package.
type User struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Session is an authenticated session. The token is the bearer credential
// the client holds between requests.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// SessionService defines the session gate operations.
type SessionService interface {
	// Login checks the credentials and mints a new session.
	// Returns ErrInvalidCredentials on mismatch without any state change.
	Login(ctx context.Context, email, password string) (*Session, error)

	// Logout ends the session identified by token.
	// Returns ErrSessionNotFound for unknown tokens.
	Logout(ctx context.Context, token string) error

	// SessionByToken restores the session for a previously issued token.
	// Returns ErrSessionNotFound for unknown tokens.
	SessionByToken(ctx context.Context, token string) (*Session, error)
}

type account struct {
	user     User
	password string
}

// defaultAccounts is the fixed credential table a real backend would replace.
var defaultAccounts = []account{
	{user: User{ID: 1, Email: "admin@example.com", Name: "Admin User"}, password: "password123"},
	{user: User{ID: 2, Email: "employee@example.com", Name: "Test Employee"}, password: "password123"},
}

// Service implements SessionService. It owns the data lifecycle: the store
// is seeded on the first login and reset when the last session ends.
type Service struct {
	mu       sync.RWMutex
	sessions map[string]Session

	accounts []account
	store    store.Store
	logger   *slog.Logger

	loginDelay time.Duration
	seedDelay  time.Duration
}

// NewService creates a session gate over the given store. loginDelay and
// seedDelay simulate backend latency; zero makes both synchronous.
func NewService(s store.Store, loginDelay, seedDelay time.Duration, logger *slog.Logger) *Service {
	return &Service{
		sessions:   make(map[string]Session),
		accounts:   defaultAccounts,
		store:      s,
		logger:     logger.With("component", "auth"),
		loginDelay: loginDelay,
		seedDelay:  seedDelay,
	}
}

// Login checks the credentials against the account table and mints a session.
func (s *Service) Login(ctx context.Context, email, password string) (*Session, error) {
	if err := s.simulateLatency(ctx); err != nil {
		return nil, err
	}

	var matched *User
	for i := range s.accounts {
		if s.accounts[i].user.Email == email && s.accounts[i].password == password {
			matched = &s.accounts[i].user
			break
		}
	}
	if matched == nil {
		return nil, orderrors.ErrInvalidCredentials
	}

	session := Session{
		Token: uuid.NewString(),
		User:  *matched,
	}

	s.mu.Lock()
	wasUnauthenticated := len(s.sessions) == 0
	s.sessions[session.Token] = session
	s.mu.Unlock()

	// Seed once per unauthenticated-to-authenticated transition.
	if wasUnauthenticated {
		s.scheduleSeed(ctx)
	}

	s.logger.InfoContext(ctx, "Login succeeded", "email", email, "user_id", matched.ID)
	return &session, nil
}

// Logout ends a session. When the last session ends the collections are
// discarded; the next login re-seeds them.
func (s *Service) Logout(ctx context.Context, token string) error {
	s.mu.Lock()
	session, ok := s.sessions[token]
	if ok {
		delete(s.sessions, token)
	}
	authenticated := len(s.sessions) > 0
	s.mu.Unlock()

	if !ok {
		return orderrors.ErrSessionNotFound
	}
	if !authenticated {
		if err := s.store.Reset(ctx); err != nil {
			return err
		}
	}
	s.logger.InfoContext(ctx, "Logout succeeded", "user_id", session.User.ID)
	return nil
}

// SessionByToken restores the session for a previously issued token.
func (s *Service) SessionByToken(_ context.Context, token string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[token]
	if !ok {
		return nil, orderrors.ErrSessionNotFound
	}
	return &session, nil
}

// simulateLatency waits out the configured login delay, honoring the context.
func (s *Service) simulateLatency(ctx context.Context) error {
	if s.loginDelay <= 0 {
		return nil
	}
	timer := time.NewTimer(s.loginDelay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// scheduleSeed loads the mock data, after the configured delay when one is
// set. The delayed load is fire-and-forget, matching the simulated initial
// fetch of the original backend.
func (s *Service) scheduleSeed(ctx context.Context) {
	if s.seedDelay <= 0 {
		if err := s.store.Seed(ctx); err != nil {
			s.logger.ErrorContext(ctx, "Failed to seed store", "error", err)
		}
		return
	}
	time.AfterFunc(s.seedDelay, func() {
		if err := s.store.Seed(context.Background()); err != nil {
			s.logger.Error("Failed to seed store", "error", err)
		}
	})
}
