package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

// rootOptions are the persistent flags.
type rootOptions struct {
	cfgFile string
	verbose bool
}

// newRootCmd builds the command tree. Each call returns an independent tree
// so tests can execute commands in isolation.
func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "ariasheet",
		Short: "WAI-ARIA cheat sheet for HTML elements",
		Long: `ariasheet reads the markuplint HTML spec dataset and tells which aria-*
attributes and roles each HTML element accepts under WAI-ARIA 1.2 and 1.1.

It prints the tables in the terminal, builds them as a static site, answers
point lookups and lints aria-* usage in HTML documents.`,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			setupLogging(cmd.ErrOrStderr(), opts.verbose)
		},
		SilenceUsage: true,
	}

	// Global flags
	cmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "",
		"config file (default is ./.ariasheet.yaml, then $HOME/.ariasheet.yaml)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")

	cmd.AddCommand(
		newElementsCmd(),
		newMatrixCmd(),
		newPermittedCmd(),
		newRolesCmd(),
		newLookupCmd(),
		newLintCmd(),
		newBuildCmd(),
		newServeCmd(),
		newInitCmd(),
		newVersionCmd(),
	)

	return cmd
}

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}

func setupLogging(w io.Writer, verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	// Using TextHandler for CLI friendliness
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}

// defaultConfigPath prefers the working directory, then the home directory.
func defaultConfigPath(name string) string {
	if _, err := os.Stat(name); err == nil {
		return name
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidate := filepath.Join(home, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return name
}
