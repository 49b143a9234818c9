package response

import (
	"movie-reviews/internal/data/entity"
)

type ReviewResponse struct {
	Movie     string `json:"movie"`
	Review    string `json:"review"`
	Sentiment string `json:"sentiment"`
}

type SentimentResponse struct {
	Polarity  float64 `json:"polarity"`
	Sentiment string  `json:"sentiment"`
}

// Helper converter
func ReviewToResponse(review entity.Review) ReviewResponse {
	return ReviewResponse{
		Movie:     review.Movie,
		Review:    review.Review,
		Sentiment: string(review.Sentiment),
	}
}

func ReviewsToResponse(reviews []entity.Review) []ReviewResponse {
	out := make([]ReviewResponse, len(reviews))
	for i, review := range reviews {
		out[i] = ReviewToResponse(review)
	}
	return out
}
