package auth

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/cerberus-watch/cerberus/internal/models"
	"log/slog"
)

// SessionStore persists authenticated sessions. A session exists from login
// until logout (or expiry); absence of the key means "not logged in".
type SessionStore interface {
	Create(ctx context.Context, session models.Session) error
	Get(ctx context.Context, id string) (*models.Session, error)
	Delete(ctx context.Context, id string) error
}

// NewSession builds a session record for a freshly authenticated user.
func NewSession(user models.User, duration time.Duration) models.Session {
	now := time.Now()
	return models.Session{
		ID:        uuid.New().String(),
		Username:  user.Username,
		Role:      user.Role,
		CreatedAt: now,
		ExpiresAt: now.Add(duration),
	}
}

// ExpiredSessionStore is a session store that can bulk-delete sessions past
// their expiry.
type ExpiredSessionStore interface {
	DeleteExpired(ctx context.Context) (int64, error)
}

// SweepExpiredSessions deletes expired sessions on every interval tick until
// the context is cancelled. Middleware already rejects expired sessions; the
// sweep only keeps the backing table from growing without bound.
func SweepExpiredSessions(ctx context.Context, store ExpiredSessionStore, interval time.Duration, logger *slog.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			deleted, err := store.DeleteExpired(ctx)
			if err != nil {
				logger.Error("failed to delete expired sessions", "error", err)
			} else if deleted > 0 {
				logger.Info("deleted expired sessions", "count", deleted)
			}
		case <-ctx.Done():
			return
		}
	}
}

// MemorySessionStore keeps sessions in process memory. Used in file-backed
// mode and in tests; the Postgres store covers persistence across restarts.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]models.Session
}

// NewMemorySessionStore creates an empty in-memory session store.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string]models.Session)}
}

func (s *MemorySessionStore) Create(ctx context.Context, session models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = session
	return nil
}

func (s *MemorySessionStore) Get(ctx context.Context, id string) (*models.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, nil
	}
	return &session, nil
}

func (s *MemorySessionStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}
