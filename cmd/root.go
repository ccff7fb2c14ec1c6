package cmd

import (
	"github.com/spf13/cobra"
)

// NewRootCommand builds the CLI; with no subcommand it serves HTTP.
func NewRootCommand() *cobra.Command {
	serveCmd := newServeCommand()

	rootCmd := &cobra.Command{
		Use:           "movie-catalog",
		Short:         "TMDB-backed movie catalog API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serveCmd.RunE,
	}

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(newMigrateCommand())
	rootCmd.AddCommand(newRoutesCommand())

	return rootCmd
}
