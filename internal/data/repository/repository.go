package repository

import (
	"fmt"
	"time"

	"movie-reviews/pkg/database"
	"movie-reviews/pkg/utils"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Repository struct {
	Review  ReviewRepository
	Session SessionRepository

	closers []func()
}

// NewRepository builds the review and session repositories selected by
// config, opening postgres and redis connections when those drivers are
// chosen.
func NewRepository(config *utils.Config, log *zap.Logger) (*Repository, error) {
	repo := &Repository{}

	switch config.Store.Driver {
	case utils.StoreDriverPostgres:
		db, err := database.InitDB(config.Database)
		if err != nil {
			return nil, fmt.Errorf("init postgres: %w", err)
		}
		repo.closers = append(repo.closers, db.Close)
		repo.Review = NewReviewPgRepository(db, log)
		log.Info("Using postgres review store", zap.String("database", config.Database.Name))

	default:
		review, err := NewReviewFileRepository(config.Store.File, log)
		if err != nil {
			return nil, fmt.Errorf("init review file store: %w", err)
		}
		repo.Review = review
		log.Info("Using file review store", zap.String("file", config.Store.File))
	}

	ttl := time.Duration(config.Session.TTLMinutes) * time.Minute

	switch config.Session.Driver {
	case utils.SessionDriverRedis:
		client, err := database.InitRedis(config.Redis)
		if err != nil {
			repo.Close()
			return nil, fmt.Errorf("init redis: %w", err)
		}
		repo.closers = append(repo.closers, func() { closeRedis(client, log) })
		repo.Session = NewSessionRedisRepository(client, ttl, log)

	default:
		repo.Session = NewSessionMemoryRepository(ttl, log)
	}

	return repo, nil
}

// Close releases connections opened by NewRepository.
func (r *Repository) Close() {
	for i := len(r.closers) - 1; i >= 0; i-- {
		r.closers[i]()
	}
	r.closers = nil
}

func closeRedis(client *redis.Client, log *zap.Logger) {
	if err := client.Close(); err != nil {
		log.Warn("Failed to close redis client", zap.Error(err))
	}
}
