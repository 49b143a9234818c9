package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"movie-reviews/internal/data/entity"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const sessionKeyPrefix = "movie-reviews:session:"

type sessionRedisRepository struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

// NewSessionRedisRepository stores each session as a JSON string with a TTL
// that is refreshed on every save.
func NewSessionRedisRepository(client *redis.Client, ttl time.Duration, log *zap.Logger) SessionRepository {
	return &sessionRedisRepository{
		client: client,
		ttl:    ttl,
		log:    log.With(zap.String("repository", "session_redis")),
	}
}

func (r *sessionRedisRepository) FindByID(ctx context.Context, id string) (*entity.SessionState, error) {
	data, err := r.client.Get(ctx, sessionKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to get session", zap.Error(err), zap.String("session_id", id))
		return nil, fmt.Errorf("get session %s: %w", id, err)
	}

	return decodeSession(id, data)
}

func (r *sessionRedisRepository) Save(ctx context.Context, state entity.SessionState) error {
	data, err := encodeSession(state)
	if err != nil {
		return err
	}

	if err := r.client.Set(ctx, sessionKeyPrefix+state.ID, data, r.ttl).Err(); err != nil {
		r.log.Error("Failed to save session", zap.Error(err), zap.String("session_id", state.ID))
		return fmt.Errorf("save session %s: %w", state.ID, err)
	}

	return nil
}
