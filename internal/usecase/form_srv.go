package usecase

import (
	"context"
	"fmt"
	"time"

	"movie-reviews/internal/data/entity"
	"movie-reviews/internal/data/repository"
	"movie-reviews/internal/dto/request"
	"movie-reviews/pkg/utils"

	"go.uber.org/zap"
)

type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
)

// Notice is an inline message shown above the form.
type Notice struct {
	Kind    NoticeKind
	Message string
}

const (
	msgMovieNameEmpty   = "Please enter a movie name."
	msgMovieNameTooLong = "Movie names can be at most %d characters long."
	msgReviewEmpty      = "Please enter a review before analyzing."
	msgReviewTooLong    = "Reviews can be at most %d characters long."
	msgReviewSaved      = "Your review and sentiment have been saved."
)

// FormView is everything needed to draw the page after one interaction.
// Result and Reviews are only set by the interaction that produced them.
type FormView struct {
	State   entity.SessionState
	Movies  []string
	Notices []Notice

	ReviewText string
	Result     *Classification

	ShowReviews bool
	Reviews     []entity.Review
}

// FormService drives the review page. Each method takes the session state
// as it was before the interaction and returns the view, whose State field
// is the state to keep for the next one.
type FormService interface {
	NewSession() entity.SessionState
	Render(ctx context.Context, state entity.SessionState) (*FormView, error)
	AddMovieButtonPressed(ctx context.Context, state entity.SessionState) (*FormView, error)
	AddMovieConfirmed(ctx context.Context, state entity.SessionState, form request.AddMovieForm) (*FormView, error)
	AnalyzePressed(ctx context.Context, state entity.SessionState, form request.AnalyzeForm) (*FormView, error)
	ShowAllPressed(ctx context.Context, state entity.SessionState) (*FormView, error)
}

type formService struct {
	repo      repository.ReviewRepository
	sentiment SentimentService
	catalog   *Catalog
	now       func() time.Time
	log       *zap.Logger
}

func NewFormService(repo repository.ReviewRepository, sentiment SentimentService, catalog *Catalog, log *zap.Logger) FormService {
	return &formService{
		repo:      repo,
		sentiment: sentiment,
		catalog:   catalog,
		now:       time.Now,
		log:       log.With(zap.String("service", "form")),
	}
}

func (s *formService) NewSession() entity.SessionState {
	now := s.now()
	return entity.SessionState{
		ID:          utils.GenerateSessionID(),
		AddedMovies: []string{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (s *formService) Render(ctx context.Context, state entity.SessionState) (*FormView, error) {
	view, err := s.begin(ctx, state)
	if err != nil {
		return nil, err
	}
	return s.finish(view), nil
}

func (s *formService) AddMovieButtonPressed(ctx context.Context, state entity.SessionState) (*FormView, error) {
	view, err := s.begin(ctx, state)
	if err != nil {
		return nil, err
	}

	view.State.ShowMovieInput = true
	return s.finish(view), nil
}

func (s *formService) AddMovieConfirmed(ctx context.Context, state entity.SessionState, form request.AddMovieForm) (*FormView, error) {
	view, err := s.begin(ctx, state)
	if err != nil {
		return nil, err
	}

	form.Name = utils.NormalizeText(form.Name)

	if errs := utils.ValidateStruct(form); len(errs) > 0 {
		message := msgMovieNameEmpty
		if form.Name != "" {
			message = fmt.Sprintf(msgMovieNameTooLong, request.MaxMovieNameLength)
		}
		view.Notices = append(view.Notices, Notice{Kind: NoticeError, Message: message})
		return s.finish(view), nil
	}

	view.State.AddedMovies = append(view.State.AddedMovies, form.Name)

	added, err := s.repo.AddMovieIfAbsent(ctx, form.Name)
	if err != nil {
		s.log.Error("Failed to add movie",
			zap.Error(err),
			zap.String("session_id", state.ID),
			zap.String("movie", form.Name),
		)
		return nil, fmt.Errorf("add movie %q: %w", form.Name, err)
	}

	view.State.ShowMovieInput = false
	view.State.SelectedMovie = form.Name
	view.Notices = append(view.Notices, Notice{
		Kind:    NoticeSuccess,
		Message: fmt.Sprintf("Movie '%s' added to the list.", form.Name),
	})

	s.log.Info("Movie added from form",
		zap.String("session_id", state.ID),
		zap.String("movie", form.Name),
		zap.Bool("new_row", added),
	)

	return s.finish(view), nil
}

func (s *formService) AnalyzePressed(ctx context.Context, state entity.SessionState, form request.AnalyzeForm) (*FormView, error) {
	view, err := s.begin(ctx, state)
	if err != nil {
		return nil, err
	}

	movie := utils.NormalizeText(form.Movie)
	if movie == "" && len(view.Movies) > 0 {
		movie = view.Movies[0]
	}
	view.State.SelectedMovie = movie

	form.Review = utils.NormalizeText(form.Review)
	view.ReviewText = form.Review

	if errs := utils.ValidateStruct(form); len(errs) > 0 {
		message := msgReviewEmpty
		if form.Review != "" {
			message = fmt.Sprintf(msgReviewTooLong, request.MaxReviewLength)
		}
		view.Notices = append(view.Notices, Notice{Kind: NoticeError, Message: message})
		return s.finish(view), nil
	}

	result, err := s.sentiment.Classify(ctx, &request.AnalyzeRequest{Text: form.Review})
	if err != nil {
		return nil, err
	}
	view.Result = result

	review := entity.Review{Movie: movie, Review: form.Review, Sentiment: result.Label}
	if err := s.repo.Append(ctx, review); err != nil {
		s.log.Error("Failed to save review",
			zap.Error(err),
			zap.String("session_id", state.ID),
			zap.String("movie", movie),
		)
		return nil, fmt.Errorf("save review: %w", err)
	}

	view.Notices = append(view.Notices, Notice{Kind: NoticeSuccess, Message: msgReviewSaved})

	s.log.Info("Review analyzed",
		zap.String("session_id", state.ID),
		zap.String("movie", movie),
		zap.String("sentiment", string(result.Label)),
		zap.Float64("polarity", result.Polarity),
	)

	return s.finish(view), nil
}

func (s *formService) ShowAllPressed(ctx context.Context, state entity.SessionState) (*FormView, error) {
	view, err := s.begin(ctx, state)
	if err != nil {
		return nil, err
	}

	reviews, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load reviews: %w", err)
	}

	view.ShowReviews = true
	view.Reviews = reviews
	return s.finish(view), nil
}

// begin runs the part every interaction shares: load the store and fold
// its titles into the session's added list.
func (s *formService) begin(ctx context.Context, state entity.SessionState) (*FormView, error) {
	reviews, err := s.repo.Load(ctx)
	if err != nil {
		s.log.Error("Failed to load reviews",
			zap.Error(err),
			zap.String("session_id", state.ID),
		)
		return nil, fmt.Errorf("load reviews: %w", err)
	}

	next := state.Clone()
	next.AddedMovies = s.catalog.Sync(state.AddedMovies, reviews)

	view := &FormView{State: next}
	view.Movies = s.catalog.Known(next.AddedMovies)
	return view, nil
}

// finish recomputes the dropdown from the final state and stamps it.
func (s *formService) finish(view *FormView) *FormView {
	view.Movies = s.catalog.Known(view.State.AddedMovies)
	if len(view.Movies) > 0 && !contains(view.Movies, view.State.SelectedMovie) {
		view.State.SelectedMovie = view.Movies[0]
	}
	view.State.UpdatedAt = s.now()
	return view
}
