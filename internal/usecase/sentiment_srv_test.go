package usecase

import (
	"context"
	"errors"
	"testing"

	"movie-reviews/internal/data/entity"
	"movie-reviews/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"pgregory.net/rapid"
)

func TestLabelForSign(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		p := rapid.Float64Range(-1, 1).Draw(t, "polarity")

		got := LabelFor(p)

		switch {
		case p > 0 && got != entity.SentimentGood:
			t.Fatalf("LabelFor(%v) = %s, want Good", p, got)
		case p < 0 && got != entity.SentimentBad:
			t.Fatalf("LabelFor(%v) = %s, want Bad", p, got)
		case p == 0 && got != entity.SentimentNeutral:
			t.Fatalf("LabelFor(%v) = %s, want Neutral", p, got)
		}
	})
}

func TestLabelForBoundaries(t *testing.T) {
	assert.Equal(t, entity.SentimentNeutral, LabelFor(0))
	assert.Equal(t, entity.SentimentGood, LabelFor(1e-12))
	assert.Equal(t, entity.SentimentBad, LabelFor(-1e-12))
}

func TestSentimentService_Classify(t *testing.T) {
	tests := []struct {
		text string
		want entity.Sentiment
	}{
		{"I loved it, fantastic!", entity.SentimentGood},
		{"Dreadful and boring.", entity.SentimentBad},
		{"It is a film.", entity.SentimentNeutral},
	}

	srv := NewSentimentService(newStubScorer(), zap.NewNop())

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := srv.Classify(context.Background(), &request.AnalyzeRequest{Text: tt.text})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Label)
		})
	}
}

func TestSentimentService_RejectsEmptyText(t *testing.T) {
	scorer := newStubScorer()
	srv := NewSentimentService(scorer, zap.NewNop())

	_, err := srv.Classify(context.Background(), &request.AnalyzeRequest{Text: ""})
	assert.ErrorIs(t, err, ErrValidation)
	assert.Zero(t, scorer.calls, "scorer must not see empty text")
}

func TestSentimentService_ScorerFailure(t *testing.T) {
	boom := errors.New("lexicon unavailable")
	srv := NewSentimentService(&stubScorer{err: boom}, zap.NewNop())

	_, err := srv.Classify(context.Background(), &request.AnalyzeRequest{Text: "fine"})
	assert.ErrorIs(t, err, boom)
}
