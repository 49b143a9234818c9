package wire

import (
	"net/http"
	"time"

	"movie-reviews/internal/adaptor"
	"movie-reviews/internal/usecase"
	"movie-reviews/pkg/middleware"
	"movie-reviews/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired HTTP surface.
type App struct {
	Router *chi.Mux
}

// Wiring builds handlers on top of service and mounts them on a router.
func Wiring(service *usecase.Service, config *utils.Config, logger *zap.Logger) *App {
	handler := adaptor.NewHandler(service, logger)

	return &App{
		Router: setupRouter(handler, config, logger),
	}
}

func setupRouter(handler *adaptor.Handler, config *utils.Config, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Recover(logger))

	// Each group mounts the access logger last so it sees the request
	// context the group's other middleware built.
	sessionTTL := time.Duration(config.Session.TTLMinutes) * time.Minute
	wireForm(r, handler.Form, sessionTTL, logger)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Logger(logger))

		wireMovie(r, handler.Movie)
		wireReview(r, handler.Review)

		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("OK"))
		})
	})

	return r
}
