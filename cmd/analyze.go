package cmd

import (
	"fmt"

	"movie-reviews/internal/dto/request"

	"github.com/spf13/cobra"
)

func newAnalyzeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze <text>",
		Short: "Print the polarity and sentiment label of text without saving it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := a.service.Review.Analyze(cmd.Context(), &request.AnalyzeRequest{Text: args[0]})
			if err != nil {
				return err
			}

			if a.jsonOut {
				return printJSON(cmd.OutOrStdout(), result)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (polarity %.3f)\n", result.Sentiment, result.Polarity)
			return nil
		},
	}
}
