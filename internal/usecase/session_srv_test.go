package usecase

import (
	"context"
	"testing"
	"time"

	"movie-reviews/internal/data/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSessionService_GetUnknownStartsFresh(t *testing.T) {
	form, _, _ := newFormService(t)
	srv := NewSessionService(repository.NewSessionMemoryRepository(time.Hour, zap.NewNop()), form, zap.NewNop())

	state, err := srv.Get(context.Background(), "5b1f3c2e-8f0a-4d7e-9c61-0d2b6a7e4f11")
	require.NoError(t, err)

	assert.Equal(t, "5b1f3c2e-8f0a-4d7e-9c61-0d2b6a7e4f11", state.ID)
	assert.Empty(t, state.AddedMovies)
	assert.False(t, state.ShowMovieInput)
	assert.False(t, state.CreatedAt.IsZero())
}

func TestSessionService_SaveThenGet(t *testing.T) {
	form, _, _ := newFormService(t)
	srv := NewSessionService(repository.NewSessionMemoryRepository(time.Hour, zap.NewNop()), form, zap.NewNop())
	ctx := context.Background()

	state, err := srv.Get(ctx, "session-a")
	require.NoError(t, err)
	state.AddedMovies = []string{"Dune"}
	state.ShowMovieInput = true
	require.NoError(t, srv.Save(ctx, state))

	got, err := srv.Get(ctx, "session-a")
	require.NoError(t, err)
	assert.Equal(t, []string{"Dune"}, got.AddedMovies)
	assert.True(t, got.ShowMovieInput)

	other, err := srv.Get(ctx, "session-b")
	require.NoError(t, err)
	assert.Empty(t, other.AddedMovies)
}
