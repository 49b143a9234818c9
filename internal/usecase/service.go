package usecase

import (
	"errors"

	"movie-reviews/internal/data/repository"
	"movie-reviews/pkg/sentiment"

	"go.uber.org/zap"
)

// ErrValidation marks errors caused by bad caller input.
var ErrValidation = errors.New("validation failed")

type Service struct {
	Sentiment SentimentService
	Review    ReviewService
	Movie     MovieService
	Form      FormService
	Session   SessionService
}

func NewService(repo *repository.Repository, scorer sentiment.Scorer, log *zap.Logger) *Service {
	catalog := NewCatalog(SeedMovies)
	sentimentSrv := NewSentimentService(scorer, log)
	formSrv := NewFormService(repo.Review, sentimentSrv, catalog, log)

	return &Service{
		Sentiment: sentimentSrv,
		Review:    NewReviewService(repo.Review, sentimentSrv, log),
		Movie:     NewMovieService(repo.Review, catalog, log),
		Form:      formSrv,
		Session:   NewSessionService(repo.Session, formSrv, log),
	}
}
