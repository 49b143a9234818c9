package usecase

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"movie-reviews/internal/data/entity"
	"movie-reviews/internal/data/repository"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubScorer returns a fixed polarity per text and 0 for anything else.
type stubScorer struct {
	polarity map[string]float64
	err      error
	calls    int
}

func (s *stubScorer) Polarity(ctx context.Context, text string) (float64, error) {
	s.calls++
	if s.err != nil {
		return 0, s.err
	}
	return s.polarity[text], nil
}

func newStubScorer() *stubScorer {
	return &stubScorer{polarity: map[string]float64{
		"I loved it, fantastic!": 0.85,
		"Dreadful and boring.":   -0.7,
		"It is a film.":          0,
	}}
}

func newReviewRepo(t *testing.T) repository.ReviewRepository {
	t.Helper()
	repo, err := repository.NewReviewFileRepository(filepath.Join(t.TempDir(), "movie_reviews.csv"), zap.NewNop())
	require.NoError(t, err)
	return repo
}

var errStorage = errors.New("disk full")

// failingRepo fails every call.
type failingRepo struct{}

func (failingRepo) Load(context.Context) ([]entity.Review, error) { return nil, errStorage }

func (failingRepo) Append(context.Context, entity.Review) error { return errStorage }

func (failingRepo) AddMovieIfAbsent(context.Context, string) (bool, error) { return false, errStorage }
