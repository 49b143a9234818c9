package cmd

import (
	"fmt"

	"movie-reviews/internal/dto/request"

	"github.com/spf13/cobra"
)

func newMoviesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "movies",
		Short: "List and add movie titles",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Print the built-in titles followed by titles found in the store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			movies, err := a.service.Movie.ListMovies(cmd.Context())
			if err != nil {
				return err
			}

			if a.jsonOut {
				return printJSON(cmd.OutOrStdout(), movies)
			}
			for _, m := range movies.Movies {
				fmt.Fprintln(cmd.OutOrStdout(), m)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "add <name>",
		Short: "Record a movie title without a review",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			movie, err := a.service.Movie.AddMovie(cmd.Context(), &request.AddMovieRequest{Name: args[0]})
			if err != nil {
				return err
			}

			if a.jsonOut {
				return printJSON(cmd.OutOrStdout(), movie)
			}
			if movie.Added {
				fmt.Fprintf(cmd.OutOrStdout(), "Movie '%s' added to the list.\n", movie.Name)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Movie '%s' is already in the list.\n", movie.Name)
			}
			return nil
		},
	})

	return cmd
}
