package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"movie-reviews/internal/data/entity"
	"movie-reviews/pkg/spreadsheet"

	"go.uber.org/zap"
)

type reviewFileRepository struct {
	path  string
	codec spreadsheet.Codec
	log   *zap.Logger
}

// NewReviewFileRepository stores the table in a spreadsheet file whose
// format follows the extension of path (.xlsx or .csv).
func NewReviewFileRepository(path string, log *zap.Logger) (ReviewRepository, error) {
	codec, err := spreadsheet.ForPath(path)
	if err != nil {
		return nil, err
	}

	return &reviewFileRepository{
		path:  path,
		codec: codec,
		log:   log.With(zap.String("repository", "review_file"), zap.String("path", path)),
	}, nil
}

func (r *reviewFileRepository) Load(ctx context.Context) ([]entity.Review, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	_, err := os.Stat(r.path)
	if errors.Is(err, os.ErrNotExist) {
		if err := r.write(nil); err != nil {
			return nil, fmt.Errorf("create review table %s: %w", r.path, err)
		}
		r.log.Info("Review table created")
		return []entity.Review{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("stat review table %s: %w", r.path, err)
	}

	rows, err := r.codec.Read(r.path)
	if err != nil {
		r.log.Error("Failed to read review table", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrMalformedTable, err)
	}

	reviews, err := decodeRows(rows)
	if err != nil {
		r.log.Error("Failed to decode review table", zap.Error(err))
		return nil, fmt.Errorf("decode %s: %w", r.path, err)
	}

	r.log.Debug("Review table loaded", zap.Int("rows", len(reviews)))
	return reviews, nil
}

func (r *reviewFileRepository) Append(ctx context.Context, review entity.Review) error {
	reviews, err := r.Load(ctx)
	if err != nil {
		return err
	}

	reviews = append(reviews, review)

	if err := r.write(reviews); err != nil {
		r.log.Error("Failed to append review",
			zap.Error(err),
			zap.String("movie", review.Movie),
		)
		return fmt.Errorf("append review for movie %q: %w", review.Movie, err)
	}

	r.log.Debug("Review appended",
		zap.String("movie", review.Movie),
		zap.String("sentiment", string(review.Sentiment)),
		zap.Int("rows", len(reviews)),
	)

	return nil
}

func (r *reviewFileRepository) AddMovieIfAbsent(ctx context.Context, movie string) (bool, error) {
	reviews, err := r.Load(ctx)
	if err != nil {
		return false, err
	}

	if containsMovie(reviews, movie) {
		return false, nil
	}

	reviews = append(reviews, entity.Review{Movie: movie})

	if err := r.write(reviews); err != nil {
		r.log.Error("Failed to add movie", zap.Error(err), zap.String("movie", movie))
		return false, fmt.Errorf("add movie %q: %w", movie, err)
	}

	r.log.Debug("Movie added", zap.String("movie", movie))
	return true, nil
}

// write rewrites the whole file: header first, then every row.
func (r *reviewFileRepository) write(reviews []entity.Review) error {
	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	rows := make([][]string, 0, len(reviews)+1)
	rows = append(rows, entity.Columns)
	for _, review := range reviews {
		rows = append(rows, review.Row())
	}

	return r.codec.Write(r.path, rows)
}

// decodeRows checks the header and converts the remaining non-empty rows.
func decodeRows(rows [][]string) ([]entity.Review, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: missing header row", ErrMalformedTable)
	}

	header := rows[0]
	for i, col := range entity.Columns {
		if i >= len(header) || header[i] != col {
			return nil, fmt.Errorf("%w: header %v, want %v", ErrMalformedTable, header, entity.Columns)
		}
	}

	reviews := make([]entity.Review, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if isEmptyRow(row) {
			continue
		}
		review := entity.ReviewFromRow(row)
		if !review.Sentiment.Valid() {
			return nil, fmt.Errorf("%w: row %d: unknown sentiment %q", ErrMalformedTable, i+2, review.Sentiment)
		}
		reviews = append(reviews, review)
	}

	return reviews, nil
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}
