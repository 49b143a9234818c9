package entity

import "time"

// SessionState is everything one form session remembers between requests.
// It is serialized as JSON by the session repositories.
type SessionState struct {
	ID             string    `json:"id"`
	AddedMovies    []string  `json:"added_movies"`
	ShowMovieInput bool      `json:"show_movie_input"`
	SelectedMovie  string    `json:"selected_movie,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Clone returns a copy that shares no slices with s.
func (s SessionState) Clone() SessionState {
	c := s
	if s.AddedMovies != nil {
		c.AddedMovies = append([]string(nil), s.AddedMovies...)
	}
	return c
}
