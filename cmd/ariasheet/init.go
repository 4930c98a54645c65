package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/reglet-dev/ariasheet/internal/domain/values"
	"github.com/reglet-dev/ariasheet/internal/infrastructure/system"
)

// InitOptions configures the settings file written by init.
type InitOptions struct {
	Path           string
	Spec           string
	Version        string
	Format         string
	ShowDeprecated bool
	NoInteractive  bool
	Force          bool
}

func newInitCmd() *cobra.Command {
	opts := &InitOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a .ariasheet.yaml settings file",
		Long: `Ask for the dataset path, the default WAI-ARIA version, whether deprecated
elements are shown and the default output format, then write them to
.ariasheet.yaml. Flags preset the answers; --no-interactive skips the prompts.`,
		Example: `  ariasheet init
  ariasheet init --no-interactive --aria-version 1.1 --show-deprecated`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, opts)
		},
	}

	defaults := system.DefaultConfig()
	cmd.Flags().StringVar(&opts.Path, "path", system.DefaultConfigFile, "Settings file to write")
	cmd.Flags().StringVar(&opts.Spec, "spec", defaults.Spec, "Path of the markuplint html-spec index.json")
	cmd.Flags().StringVar(&opts.Version, "aria-version", defaults.Version, "Default WAI-ARIA version")
	cmd.Flags().StringVar(&opts.Format, "format", defaults.Format, "Default output format")
	cmd.Flags().BoolVar(&opts.ShowDeprecated, "show-deprecated", false, "Show deprecated elements by default")
	cmd.Flags().BoolVar(&opts.NoInteractive, "no-interactive", false, "Disable interactive prompts")
	cmd.Flags().BoolVar(&opts.Force, "force", false, "Overwrite an existing settings file")

	return cmd
}

func runInit(cmd *cobra.Command, opts *InitOptions) error {
	if _, err := os.Stat(opts.Path); err == nil && !opts.Force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", opts.Path)
	}

	if !opts.NoInteractive {
		if err := promptSettings(opts); err != nil {
			return err
		}
	}

	cfg := system.DefaultConfig()
	cfg.Spec = opts.Spec
	cfg.Version = opts.Version
	cfg.Format = opts.Format
	cfg.ShowDeprecated = opts.ShowDeprecated
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := system.NewConfigLoader().Save(opts.Path, cfg); err != nil {
		return err
	}

	_, err := fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", opts.Path)
	return err
}

func promptSettings(opts *InitOptions) error {
	versionOptions := make([]huh.Option[string], 0, len(values.SupportedARIAVersions()))
	for _, v := range values.SupportedARIAVersions() {
		versionOptions = append(versionOptions, huh.NewOption("WAI-ARIA "+v.String(), v.String()))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Path of the html-spec index.json").
				Value(&opts.Spec),
			huh.NewSelect[string]().
				Title("Default WAI-ARIA version").
				Options(versionOptions...).
				Value(&opts.Version),
			huh.NewConfirm().
				Title("Show deprecated and obsolete elements?").
				Value(&opts.ShowDeprecated),
			huh.NewSelect[string]().
				Title("Default output format").
				Options(
					huh.NewOption("Terminal table", "table"),
					huh.NewOption("JSON", "json"),
					huh.NewOption("YAML", "yaml"),
					huh.NewOption("Markdown", "markdown"),
				).
				Value(&opts.Format),
		),
	)
	return form.Run()
}
