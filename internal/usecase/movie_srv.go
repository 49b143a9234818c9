package usecase

import (
	"context"
	"fmt"

	"movie-reviews/internal/data/repository"
	"movie-reviews/internal/dto/request"
	"movie-reviews/internal/dto/response"
	"movie-reviews/pkg/utils"

	"go.uber.org/zap"
)

type MovieService interface {
	// ListMovies returns the seed titles followed by every other title in
	// the store, without session additions.
	ListMovies(ctx context.Context) (*response.MovieListResponse, error)
	AddMovie(ctx context.Context, req *request.AddMovieRequest) (*response.MovieResponse, error)
}

type movieService struct {
	repo    repository.ReviewRepository
	catalog *Catalog
	log     *zap.Logger
}

func NewMovieService(repo repository.ReviewRepository, catalog *Catalog, log *zap.Logger) MovieService {
	return &movieService{
		repo:    repo,
		catalog: catalog,
		log:     log.With(zap.String("service", "movie")),
	}
}

func (s *movieService) ListMovies(ctx context.Context) (*response.MovieListResponse, error) {
	reviews, err := s.repo.Load(ctx)
	if err != nil {
		s.log.Error("Failed to load reviews", zap.Error(err))
		return nil, fmt.Errorf("load reviews: %w", err)
	}

	movies := s.catalog.Known(s.catalog.Sync(nil, reviews))

	return &response.MovieListResponse{
		Movies: movies,
		Total:  len(movies),
	}, nil
}

func (s *movieService) AddMovie(ctx context.Context, req *request.AddMovieRequest) (*response.MovieResponse, error) {
	req.Name = utils.NormalizeText(req.Name)

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Add movie validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	added, err := s.repo.AddMovieIfAbsent(ctx, req.Name)
	if err != nil {
		s.log.Error("Failed to add movie", zap.Error(err), zap.String("movie", req.Name))
		return nil, fmt.Errorf("add movie: %w", err)
	}

	s.log.Info("Movie add requested",
		zap.String("movie", req.Name),
		zap.Bool("added", added),
	)

	return &response.MovieResponse{Name: req.Name, Added: added}, nil
}
