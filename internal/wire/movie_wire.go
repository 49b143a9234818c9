package wire

import (
	"movie-reviews/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireMovie(r chi.Router, movieHandler *adaptor.MovieHandler) {
	r.Route("/api/movies", func(r chi.Router) {
		r.Get("/", movieHandler.GetMovies) // GET /api/movies
		r.Post("/", movieHandler.AddMovie) // POST /api/movies
	})
}
