package usecase

import (
	"context"
	"fmt"

	"movie-reviews/internal/data/entity"
	"movie-reviews/internal/data/repository"
	"movie-reviews/internal/dto/request"
	"movie-reviews/internal/dto/response"
	"movie-reviews/pkg/utils"

	"go.uber.org/zap"
)

type ReviewService interface {
	ListReviews(ctx context.Context) ([]response.ReviewResponse, error)
	CreateReview(ctx context.Context, req *request.CreateReviewRequest) (*response.ReviewResponse, error)
	Analyze(ctx context.Context, req *request.AnalyzeRequest) (*response.SentimentResponse, error)
}

type reviewService struct {
	repo      repository.ReviewRepository
	sentiment SentimentService
	log       *zap.Logger
}

func NewReviewService(repo repository.ReviewRepository, sentiment SentimentService, log *zap.Logger) ReviewService {
	return &reviewService{
		repo:      repo,
		sentiment: sentiment,
		log:       log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) ListReviews(ctx context.Context) ([]response.ReviewResponse, error) {
	reviews, err := s.repo.Load(ctx)
	if err != nil {
		s.log.Error("Failed to load reviews", zap.Error(err))
		return nil, fmt.Errorf("load reviews: %w", err)
	}

	s.log.Info("Reviews retrieved", zap.Int("count", len(reviews)))
	return response.ReviewsToResponse(reviews), nil
}

func (s *reviewService) CreateReview(ctx context.Context, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	req.Movie = utils.NormalizeText(req.Movie)
	req.Review = utils.NormalizeText(req.Review)

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create review validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	result, err := s.sentiment.Classify(ctx, &request.AnalyzeRequest{Text: req.Review})
	if err != nil {
		return nil, err
	}

	review := entity.Review{
		Movie:     req.Movie,
		Review:    req.Review,
		Sentiment: result.Label,
	}

	if err := s.repo.Append(ctx, review); err != nil {
		s.log.Error("Failed to save review",
			zap.Error(err),
			zap.String("movie", req.Movie),
		)
		return nil, fmt.Errorf("save review: %w", err)
	}

	s.log.Info("Review created",
		zap.String("movie", req.Movie),
		zap.String("sentiment", string(result.Label)),
		zap.Float64("polarity", result.Polarity),
	)

	resp := response.ReviewToResponse(review)
	return &resp, nil
}

func (s *reviewService) Analyze(ctx context.Context, req *request.AnalyzeRequest) (*response.SentimentResponse, error) {
	req.Text = utils.NormalizeText(req.Text)

	result, err := s.sentiment.Classify(ctx, req)
	if err != nil {
		return nil, err
	}

	return &response.SentimentResponse{
		Polarity:  result.Polarity,
		Sentiment: string(result.Label),
	}, nil
}
