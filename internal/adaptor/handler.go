package adaptor

import (
	"errors"
	"net/http"

	"movie-reviews/internal/usecase"
	"movie-reviews/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Form   *FormHandler
	Review *ReviewHandler
	Movie  *MovieHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Form:   NewFormHandler(service.Form, service.Session, log),
		Review: NewReviewHandler(service.Review, log),
		Movie:  NewMovieHandler(service.Movie, log),
	}
}

// handleServiceError maps service errors to API responses
func handleServiceError(log *zap.Logger, w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrValidation):
		log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, err.Error(), nil)

	default:
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
