package entity

// Sentiment is the label derived from a review's polarity.
type Sentiment string

const (
	SentimentGood    Sentiment = "Good"
	SentimentBad     Sentiment = "Bad"
	SentimentNeutral Sentiment = "Neutral"

	// SentimentNone marks a bare movie row that has no review yet.
	SentimentNone Sentiment = ""
)

// Valid reports whether s is one of the three labels or empty.
func (s Sentiment) Valid() bool {
	switch s {
	case SentimentGood, SentimentBad, SentimentNeutral, SentimentNone:
		return true
	}
	return false
}

// Column names of the persisted table, in order.
const (
	ColumnMovie     = "Movie"
	ColumnReview    = "Review"
	ColumnSentiment = "Sentiment"
)

// Columns is the header row of the persisted table.
var Columns = []string{ColumnMovie, ColumnReview, ColumnSentiment}

type Review struct {
	Movie     string    `db:"movie" json:"movie"`
	Review    string    `db:"review" json:"review"`
	Sentiment Sentiment `db:"sentiment" json:"sentiment"`
}

// Row returns the record as a table row in column order.
func (r Review) Row() []string {
	return []string{r.Movie, r.Review, string(r.Sentiment)}
}

// ReviewFromRow builds a record from a table row, padding missing cells.
func ReviewFromRow(row []string) Review {
	cells := make([]string, len(Columns))
	copy(cells, row)
	return Review{
		Movie:     cells[0],
		Review:    cells[1],
		Sentiment: Sentiment(cells[2]),
	}
}
