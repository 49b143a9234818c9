package repository

import (
	"context"
	"sync"
	"time"

	"movie-reviews/internal/data/entity"

	"go.uber.org/zap"
)

type memorySession struct {
	data      []byte
	expiresAt time.Time
}

type sessionMemoryRepository struct {
	mu       sync.Mutex
	sessions map[string]memorySession
	ttl      time.Duration
	now      func() time.Time
	log      *zap.Logger
}

// NewSessionMemoryRepository keeps sessions in process memory. Expired
// entries are dropped lazily on lookup and on save.
func NewSessionMemoryRepository(ttl time.Duration, log *zap.Logger) SessionRepository {
	return &sessionMemoryRepository{
		sessions: make(map[string]memorySession),
		ttl:      ttl,
		now:      time.Now,
		log:      log.With(zap.String("repository", "session_memory")),
	}
}

func (r *sessionMemoryRepository) FindByID(ctx context.Context, id string) (*entity.SessionState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, nil
	}
	if r.now().After(s.expiresAt) {
		delete(r.sessions, id)
		return nil, nil
	}

	return decodeSession(id, s.data)
}

func (r *sessionMemoryRepository) Save(ctx context.Context, state entity.SessionState) error {
	data, err := encodeSession(state)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	for id, s := range r.sessions {
		if now.After(s.expiresAt) {
			delete(r.sessions, id)
		}
	}

	r.sessions[state.ID] = memorySession{data: data, expiresAt: now.Add(r.ttl)}
	r.log.Debug("Session saved", zap.String("session_id", state.ID), zap.Int("sessions", len(r.sessions)))
	return nil
}
