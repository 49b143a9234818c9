package repository

import (
	"context"
	"fmt"

	"movie-reviews/internal/data/entity"
	"movie-reviews/pkg/database"

	"go.uber.org/zap"
)

const createReviewsTable = `
	CREATE TABLE IF NOT EXISTS reviews (
		id        BIGSERIAL PRIMARY KEY,
		movie     TEXT NOT NULL,
		review    TEXT NOT NULL DEFAULT '',
		sentiment TEXT NOT NULL DEFAULT ''
	)
`

type reviewPgRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

// NewReviewPgRepository keeps the table in postgres. Rows are only ever
// inserted, so insertion order is the id order.
func NewReviewPgRepository(db database.PgxIface, log *zap.Logger) ReviewRepository {
	return &reviewPgRepository{
		db:  db,
		log: log.With(zap.String("repository", "review_pg")),
	}
}

func (r *reviewPgRepository) ensureTable(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, createReviewsTable); err != nil {
		r.log.Error("Failed to create reviews table", zap.Error(err))
		return fmt.Errorf("create reviews table: %w", err)
	}
	return nil
}

func (r *reviewPgRepository) Load(ctx context.Context) ([]entity.Review, error) {
	if err := r.ensureTable(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT movie, review, sentiment
		FROM reviews
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to load reviews", zap.Error(err))
		return nil, fmt.Errorf("load reviews: %w", err)
	}
	defer rows.Close()

	reviews := []entity.Review{}
	for rows.Next() {
		var review entity.Review
		if err := rows.Scan(&review.Movie, &review.Review, &review.Sentiment); err != nil {
			r.log.Error("Failed to scan review row", zap.Error(err))
			return nil, fmt.Errorf("%w: scan review row: %w", ErrMalformedTable, err)
		}
		if !review.Sentiment.Valid() {
			return nil, fmt.Errorf("%w: unknown sentiment %q for movie %q", ErrMalformedTable, review.Sentiment, review.Movie)
		}
		reviews = append(reviews, review)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reviews: %w", err)
	}

	return reviews, nil
}

func (r *reviewPgRepository) Append(ctx context.Context, review entity.Review) error {
	if err := r.ensureTable(ctx); err != nil {
		return err
	}

	query := `
		INSERT INTO reviews (movie, review, sentiment)
		VALUES ($1, $2, $3)
	`

	if _, err := r.db.Exec(ctx, query, review.Movie, review.Review, string(review.Sentiment)); err != nil {
		r.log.Error("Failed to append review",
			zap.Error(err),
			zap.String("movie", review.Movie),
		)
		return fmt.Errorf("append review for movie %q: %w", review.Movie, err)
	}

	return nil
}

func (r *reviewPgRepository) AddMovieIfAbsent(ctx context.Context, movie string) (bool, error) {
	if err := r.ensureTable(ctx); err != nil {
		return false, err
	}

	query := `
		INSERT INTO reviews (movie)
		SELECT $1
		WHERE NOT EXISTS (SELECT 1 FROM reviews WHERE movie = $1)
	`

	result, err := r.db.Exec(ctx, query, movie)
	if err != nil {
		r.log.Error("Failed to add movie", zap.Error(err), zap.String("movie", movie))
		return false, fmt.Errorf("add movie %q: %w", movie, err)
	}

	return result.RowsAffected() > 0, nil
}
