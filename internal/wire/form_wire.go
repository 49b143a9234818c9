package wire

import (
	"time"

	"movie-reviews/internal/adaptor"
	"movie-reviews/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireForm(r chi.Router, formHandler *adaptor.FormHandler, ttl time.Duration, log *zap.Logger) {
	// The page is the only surface with per-visitor state, so only it gets
	// the session cookie.
	r.Group(func(r chi.Router) {
		r.Use(middleware.Session(ttl, log))
		r.Use(middleware.Logger(log))

		r.Get("/", formHandler.ShowForm)
		r.Post("/", formHandler.SubmitForm)
	})
}
