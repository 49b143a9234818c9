// Package sentiment scores the polarity of free text.
package sentiment

import (
	"context"
	"fmt"
	"math"

	"github.com/tsawler/prose/v3"
)

// Scorer returns a polarity in [-1, 1] for text. Positive values mean a
// favourable tone, negative an unfavourable one.
type Scorer interface {
	Polarity(ctx context.Context, text string) (float64, error)
}

// ProseScorer scores text with the prose lexicon analyzer.
type ProseScorer struct {
	analyzer *prose.SentimentAnalyzer
}

// NewProseScorer builds an English lexicon scorer. The ML classifier is
// left off so scores depend only on the bundled lexicon.
func NewProseScorer() *ProseScorer {
	config := prose.DefaultSentimentConfig()
	config.UseML = false

	return &ProseScorer{
		analyzer: prose.NewSentimentAnalyzer(prose.English, config),
	}
}

func (s *ProseScorer) Polarity(ctx context.Context, text string) (float64, error) {
	doc, err := prose.NewDocument(text,
		prose.WithContext(ctx),
		prose.WithExtraction(false),
	)
	if err != nil {
		return 0, fmt.Errorf("tokenize review: %w", err)
	}

	polarity := s.analyzer.AnalyzeDocument(doc).Polarity
	if math.IsNaN(polarity) {
		return 0, nil
	}

	return clamp(polarity), nil
}

func clamp(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}
