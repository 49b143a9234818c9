package request

type AddMovieRequest struct {
	Name string `json:"name" validate:"required,max=200"`
}
