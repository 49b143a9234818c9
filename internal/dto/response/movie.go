package response

type MovieResponse struct {
	Name  string `json:"name"`
	Added bool   `json:"added"`
}

type MovieListResponse struct {
	Movies []string `json:"movies"`
	Total  int      `json:"total"`
}
