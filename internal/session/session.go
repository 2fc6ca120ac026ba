// Package session implements server-side authentication sessions: an
// opaque token handed to the client maps to identity and role state kept
// in a pluggable store. Tokens move through absent -> active ->
// terminated; a terminated or expired token is gone for good and a fresh
// login issues a brand new session.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrSessionNotFound = errors.New("session not found")

type Session struct {
	Token      string    `json:"token"`
	EmployeeID uint      `json:"employee_id"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	IssuedAt   time.Time `json:"issued_at"`
	ExpiresAt  time.Time `json:"expires_at"`
}

func (s Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// Store is the swappable persistence backend for sessions.
type Store interface {
	Save(ctx context.Context, s Session) error
	Get(ctx context.Context, token string) (*Session, error)
	Delete(ctx context.Context, token string) error
}

type Manager struct {
	store  Store
	ttl    time.Duration
	now    func() time.Time
	logger *zap.Logger
}

func NewManager(store Store, ttl time.Duration, logger ...*zap.Logger) *Manager {
	l := zap.L().Named("session.manager")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("session.manager")
	}
	return &Manager{
		store:  store,
		ttl:    ttl,
		now:    time.Now,
		logger: l,
	}
}

// Issue creates a new active session bound to one employee identity.
func (m *Manager) Issue(ctx context.Context, employeeID uint, email, role string) (Session, error) {
	now := m.now().UTC()
	s := Session{
		Token:      uuid.NewString(),
		EmployeeID: employeeID,
		Email:      email,
		Role:       role,
		IssuedAt:   now,
		ExpiresAt:  now.Add(m.ttl),
	}

	if err := m.store.Save(ctx, s); err != nil {
		m.logger.Error("issue session failed", zap.Uint("employee_id", employeeID), zap.Error(err))
		return Session{}, err
	}

	m.logger.Info("session issued",
		zap.Uint("employee_id", employeeID),
		zap.String("role", role),
	)
	return s, nil
}

// Resolve looks up an active session by token. Expired sessions are
// purged and reported as not found; activity slides the expiry forward.
func (m *Manager) Resolve(ctx context.Context, token string) (*Session, error) {
	if token == "" {
		return nil, ErrSessionNotFound
	}

	s, err := m.store.Get(ctx, token)
	if err != nil {
		return nil, err
	}

	now := m.now().UTC()
	if s.Expired(now) {
		_ = m.store.Delete(ctx, token)
		m.logger.Debug("session expired", zap.Uint("employee_id", s.EmployeeID))
		return nil, ErrSessionNotFound
	}

	s.ExpiresAt = now.Add(m.ttl)
	if err := m.store.Save(ctx, *s); err != nil {
		m.logger.Warn("session touch failed", zap.Error(err))
	}

	return s, nil
}

// Terminate invalidates a session; later Resolve calls fail. Terminating
// an already absent token is not an error.
func (m *Manager) Terminate(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := m.store.Delete(ctx, token); err != nil && !errors.Is(err, ErrSessionNotFound) {
		m.logger.Error("terminate session failed", zap.Error(err))
		return err
	}
	m.logger.Info("session terminated")
	return nil
}

// TTL reports the configured inactivity window, used for cookie max-age.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}
