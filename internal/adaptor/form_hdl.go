package adaptor

import (
	"bytes"
	"context"
	"embed"
	"html/template"
	"net/http"

	"movie-reviews/internal/data/entity"
	"movie-reviews/internal/dto/request"
	"movie-reviews/internal/usecase"
	"movie-reviews/pkg/utils"

	"go.uber.org/zap"
)

//go:embed templates/form.html
var templateFS embed.FS

var formTemplate = template.Must(template.ParseFS(templateFS, "templates/form.html"))

// Values of the "action" field, one per button on the page.
const (
	actionOpenMovieInput = "open_movie_input"
	actionAddMovie       = "add_movie"
	actionAnalyze        = "analyze"
	actionShowAll        = "show_all"
)

const pageTitle = "Movie Review Sentiment Analysis"

type FormHandler struct {
	form     usecase.FormService
	sessions usecase.SessionService
	log      *zap.Logger
}

func NewFormHandler(form usecase.FormService, sessions usecase.SessionService, log *zap.Logger) *FormHandler {
	return &FormHandler{
		form:     form,
		sessions: sessions,
		log:      log.With(zap.String("handler", "form")),
	}
}

type formPage struct {
	Title          string
	Movies         []string
	Selected       string
	ShowMovieInput bool
	Notices        []usecase.Notice
	ReviewText     string
	Result         *usecase.Classification
	ShowReviews    bool
	Reviews        []entity.Review
}

// ShowForm handles GET /
func (h *FormHandler) ShowForm(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, func(ctx context.Context, state entity.SessionState) (*usecase.FormView, error) {
		return h.form.Render(ctx, state)
	})
}

// SubmitForm handles POST / for every button on the page.
func (h *FormHandler) SubmitForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	movie := r.PostForm.Get("movie")
	review := r.PostForm.Get("review")
	action := r.PostForm.Get("action")

	var transition func(ctx context.Context, state entity.SessionState) (*usecase.FormView, error)

	switch action {
	case actionOpenMovieInput:
		transition = h.form.AddMovieButtonPressed
	case actionAddMovie:
		transition = func(ctx context.Context, state entity.SessionState) (*usecase.FormView, error) {
			return h.form.AddMovieConfirmed(ctx, state, request.AddMovieForm{Name: r.PostForm.Get("new_movie")})
		}
	case actionAnalyze:
		transition = func(ctx context.Context, state entity.SessionState) (*usecase.FormView, error) {
			return h.form.AnalyzePressed(ctx, state, request.AnalyzeForm{Movie: movie, Review: review})
		}
	case actionShowAll:
		transition = h.form.ShowAllPressed
	default:
		h.log.Warn("Unknown form action", zap.String("action", action))
		http.Error(w, "Unknown action", http.StatusBadRequest)
		return
	}

	h.run(w, r, func(ctx context.Context, state entity.SessionState) (*usecase.FormView, error) {
		if movie != "" {
			state.SelectedMovie = movie
		}

		view, err := transition(ctx, state)
		if err != nil {
			return nil, err
		}
		if view.ReviewText == "" {
			view.ReviewText = review
		}
		return view, nil
	})
}

// run loads the session, applies one transition, stores the resulting
// state and renders the page.
func (h *FormHandler) run(w http.ResponseWriter, r *http.Request, transition func(context.Context, entity.SessionState) (*usecase.FormView, error)) {
	ctx := r.Context()

	sessionID, ok := utils.GetSessionIDFromContext(ctx)
	if !ok {
		h.log.Error("Request without session id", zap.String("path", r.URL.Path))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	state, err := h.sessions.Get(ctx, sessionID)
	if err != nil {
		h.fail(w, err, "load session", sessionID)
		return
	}

	view, err := transition(ctx, state)
	if err != nil {
		h.fail(w, err, "handle form", sessionID)
		return
	}

	if err := h.sessions.Save(ctx, view.State); err != nil {
		h.fail(w, err, "save session", sessionID)
		return
	}

	h.render(w, view)
}

func (h *FormHandler) render(w http.ResponseWriter, view *usecase.FormView) {
	page := formPage{
		Title:          pageTitle,
		Movies:         view.Movies,
		Selected:       view.State.SelectedMovie,
		ShowMovieInput: view.State.ShowMovieInput,
		Notices:        view.Notices,
		ReviewText:     view.ReviewText,
		Result:         view.Result,
		ShowReviews:    view.ShowReviews,
		Reviews:        view.Reviews,
	}

	var buf bytes.Buffer
	if err := formTemplate.Execute(&buf, page); err != nil {
		h.log.Error("Failed to render form", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// fail aborts the interaction. Storage and classifier failures are not
// retried.
func (h *FormHandler) fail(w http.ResponseWriter, err error, operation, sessionID string) {
	h.log.Error("Failed to "+operation,
		zap.Error(err),
		zap.String("operation", operation),
		zap.String("session_id", sessionID),
	)
	http.Error(w, "Internal server error", http.StatusInternalServerError)
}
