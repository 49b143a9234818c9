package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"movie-reviews/internal/dto/request"
	"movie-reviews/internal/dto/response"

	"github.com/spf13/cobra"
)

func newReviewsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reviews",
		Short: "Read and append reviews",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Print every row of the review store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reviews, err := a.service.Review.ListReviews(cmd.Context())
			if err != nil {
				return err
			}

			if a.jsonOut {
				return printJSON(cmd.OutOrStdout(), reviews)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatReviewTable(reviews))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "add <movie> <review>",
		Short: "Classify a review and append it to the store",
		Example: `  moviereviews reviews add Titanic "A beautiful, moving film."`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			review, err := a.service.Review.CreateReview(cmd.Context(), &request.CreateReviewRequest{
				Movie:  args[0],
				Review: args[1],
			})
			if err != nil {
				return err
			}

			if a.jsonOut {
				return printJSON(cmd.OutOrStdout(), review)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved review for %s: %s\n", review.Movie, review.Sentiment)
			return nil
		},
	})

	return cmd
}

// formatReviewTable lays reviews out with a row index column, the way the
// review page shows them.
func formatReviewTable(reviews []response.ReviewResponse) string {
	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "\tMovie\tReview\tSentiment")
	for i, r := range reviews {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", i, r.Movie, r.Review, r.Sentiment)
	}
	w.Flush()

	return sb.String()
}
