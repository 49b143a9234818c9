package adaptor

import (
	"encoding/json"
	"fmt"
	"net/http"

	"movie-reviews/internal/dto/request"
	"movie-reviews/internal/usecase"
	"movie-reviews/pkg/utils"

	"go.uber.org/zap"
)

type MovieHandler struct {
	service usecase.MovieService
	log     *zap.Logger
}

func NewMovieHandler(service usecase.MovieService, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		log:     log.With(zap.String("handler", "movie")),
	}
}

// GetMovies handles GET /api/movies
func (h *MovieHandler) GetMovies(w http.ResponseWriter, r *http.Request) {
	movies, err := h.service.ListMovies(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "list movies")
		return
	}

	utils.ResponseSuccess(w, "success", movies)
}

// AddMovie handles POST /api/movies
func (h *MovieHandler) AddMovie(w http.ResponseWriter, r *http.Request) {
	var req request.AddMovieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	movie, err := h.service.AddMovie(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "add movie")
		return
	}

	message := fmt.Sprintf("Movie '%s' added to the list.", movie.Name)
	if !movie.Added {
		message = fmt.Sprintf("Movie '%s' is already in the list.", movie.Name)
		utils.ResponseSuccess(w, message, movie)
		return
	}

	utils.ResponseCreated(w, message, movie)
}
