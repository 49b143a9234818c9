package repository

import (
	"context"
	"errors"

	"movie-reviews/internal/data/entity"
)

// ErrMalformedTable is returned when a persisted table cannot be decoded.
var ErrMalformedTable = errors.New("malformed review table")

// ReviewRepository persists the flat Movie/Review/Sentiment table. Every
// call is a full read, and writes are a full rewrite; there is no locking
// between callers.
type ReviewRepository interface {
	// Load returns every row, creating an empty table when none exists.
	Load(ctx context.Context) ([]entity.Review, error)
	// Append adds one row at the end of the table.
	Append(ctx context.Context, review entity.Review) error
	// AddMovieIfAbsent adds a bare row for movie unless some row already
	// carries that exact title. It reports whether a row was written.
	AddMovieIfAbsent(ctx context.Context, movie string) (bool, error)
}

// containsMovie is a linear scan with exact string comparison.
func containsMovie(rows []entity.Review, movie string) bool {
	for _, row := range rows {
		if row.Movie == movie {
			return true
		}
	}
	return false
}
