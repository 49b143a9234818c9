package wire

import (
	"movie-reviews/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireReview(r chi.Router, reviewHandler *adaptor.ReviewHandler) {
	r.Route("/api/reviews", func(r chi.Router) {
		r.Get("/", reviewHandler.GetReviews)    // GET /api/reviews
		r.Post("/", reviewHandler.CreateReview) // POST /api/reviews
	})

	// POST /api/sentiment - classify without saving
	r.Post("/api/sentiment", reviewHandler.AnalyzeSentiment)
}
