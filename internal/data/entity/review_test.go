package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReviewFromRow(t *testing.T) {
	tests := []struct {
		name string
		row  []string
		want Review
	}{
		{
			name: "full row",
			row:  []string{"Titanic", "I loved it", "Good"},
			want: Review{Movie: "Titanic", Review: "I loved it", Sentiment: SentimentGood},
		},
		{
			name: "trailing cells dropped",
			row:  []string{"Dune"},
			want: Review{Movie: "Dune"},
		},
		{
			name: "extra cells ignored",
			row:  []string{"Avatar", "meh", "Neutral", "extra"},
			want: Review{Movie: "Avatar", Review: "meh", Sentiment: SentimentNeutral},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ReviewFromRow(tt.row))
		})
	}
}

func TestSentimentValid(t *testing.T) {
	for _, s := range []Sentiment{SentimentGood, SentimentBad, SentimentNeutral, SentimentNone} {
		assert.True(t, s.Valid(), s)
	}
	assert.False(t, Sentiment("Great").Valid())
	assert.False(t, Sentiment("good").Valid())
}

func TestSessionStateClone(t *testing.T) {
	s := SessionState{ID: "a", AddedMovies: []string{"Dune"}}
	c := s.Clone()
	c.AddedMovies[0] = "Heat"

	assert.Equal(t, "Dune", s.AddedMovies[0])
}
