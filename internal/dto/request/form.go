package request

// Upper bounds for page input. A review has to fit one workbook cell.
const (
	MaxMovieNameLength = 200
	MaxReviewLength    = 32767
)

type AddMovieForm struct {
	Name string `validate:"required,max=200"`
}

type AnalyzeForm struct {
	Movie  string
	Review string `validate:"required,max=32767"`
}
