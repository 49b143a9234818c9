package usecase

import (
	"context"
	"fmt"

	"movie-reviews/internal/data/entity"
	"movie-reviews/internal/data/repository"

	"go.uber.org/zap"
)

type SessionService interface {
	// Get returns the stored state for id, or a fresh state carrying id
	// when nothing is stored.
	Get(ctx context.Context, id string) (entity.SessionState, error)
	Save(ctx context.Context, state entity.SessionState) error
}

type sessionService struct {
	repo repository.SessionRepository
	form FormService
	log  *zap.Logger
}

func NewSessionService(repo repository.SessionRepository, form FormService, log *zap.Logger) SessionService {
	return &sessionService{
		repo: repo,
		form: form,
		log:  log.With(zap.String("service", "session")),
	}
}

func (s *sessionService) Get(ctx context.Context, id string) (entity.SessionState, error) {
	state, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return entity.SessionState{}, fmt.Errorf("find session: %w", err)
	}
	if state != nil {
		return *state, nil
	}

	fresh := s.form.NewSession()
	fresh.ID = id
	s.log.Debug("Session started", zap.String("session_id", id))
	return fresh, nil
}

func (s *sessionService) Save(ctx context.Context, state entity.SessionState) error {
	if err := s.repo.Save(ctx, state); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}
