package request

type CreateReviewRequest struct {
	Movie  string `json:"movie" validate:"required,max=200"`
	Review string `json:"review" validate:"required,max=5000"`
}

type AnalyzeRequest struct {
	Text string `json:"text" validate:"required"`
}
