package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"movie-reviews/internal/data/entity"
)

// SessionRepository stores form session state between requests.
type SessionRepository interface {
	// FindByID returns nil, nil when the session is unknown or expired.
	FindByID(ctx context.Context, id string) (*entity.SessionState, error)
	Save(ctx context.Context, state entity.SessionState) error
}

func encodeSession(state entity.SessionState) ([]byte, error) {
	data, err := json.Marshal(state)
	if err != nil {
		return nil, fmt.Errorf("encode session %s: %w", state.ID, err)
	}
	return data, nil
}

func decodeSession(id string, data []byte) (*entity.SessionState, error) {
	var state entity.SessionState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("decode session %s: %w", id, err)
	}
	return &state, nil
}
