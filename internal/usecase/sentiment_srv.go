package usecase

import (
	"context"
	"fmt"

	"movie-reviews/internal/data/entity"
	"movie-reviews/internal/dto/request"
	"movie-reviews/pkg/sentiment"
	"movie-reviews/pkg/utils"

	"go.uber.org/zap"
)

// Classification is the outcome of scoring one review.
type Classification struct {
	Polarity float64
	Label    entity.Sentiment
}

type SentimentService interface {
	Classify(ctx context.Context, req *request.AnalyzeRequest) (*Classification, error)
}

type sentimentService struct {
	scorer sentiment.Scorer
	log    *zap.Logger
}

func NewSentimentService(scorer sentiment.Scorer, log *zap.Logger) SentimentService {
	return &sentimentService{
		scorer: scorer,
		log:    log.With(zap.String("service", "sentiment")),
	}
}

func (s *sentimentService) Classify(ctx context.Context, req *request.AnalyzeRequest) (*Classification, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	polarity, err := s.scorer.Polarity(ctx, req.Text)
	if err != nil {
		s.log.Error("Failed to score review", zap.Error(err))
		return nil, fmt.Errorf("score review: %w", err)
	}

	label := LabelFor(polarity)

	s.log.Debug("Review classified",
		zap.Float64("polarity", polarity),
		zap.String("sentiment", string(label)),
	)

	return &Classification{Polarity: polarity, Label: label}, nil
}

// LabelFor maps a polarity to its label by sign. Zero is Neutral; there is
// no tolerance band around it.
func LabelFor(polarity float64) entity.Sentiment {
	switch {
	case polarity > 0:
		return entity.SentimentGood
	case polarity < 0:
		return entity.SentimentBad
	default:
		return entity.SentimentNeutral
	}
}
