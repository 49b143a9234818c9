// Package cmd is the moviereviews command line: the web server plus
// scripting access to the review store.
package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"movie-reviews/internal/data/repository"
	"movie-reviews/internal/usecase"
	"movie-reviews/pkg/sentiment"
	"movie-reviews/pkg/utils"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app is the state shared by every subcommand, filled in by setup.
type app struct {
	envFile string
	jsonOut bool

	config  *utils.Config
	log     *zap.Logger
	repo    *repository.Repository
	service *usecase.Service
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "moviereviews",
		Short: "Collect movie reviews and label their sentiment",
		Long: `moviereviews stores movie reviews together with a Good, Bad or Neutral
sentiment label derived from the review text.

Run "moviereviews serve" for the review page, or use the subcommands to
read and write the same store from scripts.`,
		SilenceUsage:       true,
		PersistentPreRunE:  a.setup,
		PersistentPostRunE: a.teardown,
	}

	root.PersistentFlags().StringVar(&a.envFile, "env", ".env", "dotenv file to read settings from, when present")
	root.PersistentFlags().BoolVar(&a.jsonOut, "json", false, "output as JSON")

	root.AddCommand(newServeCmd(a))
	root.AddCommand(newReviewsCmd(a))
	root.AddCommand(newMoviesCmd(a))
	root.AddCommand(newAnalyzeCmd(a))

	return root
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	config, err := utils.LoadConfigFrom(a.envFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	a.config = config

	logger, err := utils.InitLogger(config.App.LogPath, config.App.Name, config.App.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to init logger: %v. Using default production logger.\n", err)
		logger, _ = zap.NewProduction()
	}
	a.log = logger

	repo, err := repository.NewRepository(config, logger)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	a.repo = repo

	a.service = usecase.NewService(repo, sentiment.NewProseScorer(), logger)
	return nil
}

func (a *app) teardown(cmd *cobra.Command, args []string) error {
	if a.repo != nil {
		a.repo.Close()
	}
	if a.log != nil {
		a.log.Sync()
	}
	return nil
}

func printJSON(w io.Writer, v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Fprintln(w, string(output))
	return nil
}
