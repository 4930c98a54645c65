package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/reglet-dev/ariasheet/internal/application/dto"
	"github.com/reglet-dev/ariasheet/internal/domain/values"
	"github.com/reglet-dev/ariasheet/internal/infrastructure/system"
)

// envPrefix prefixes every environment override, e.g. ARIASHEET_SPEC.
const envPrefix = "ARIASHEET"

// Format sets accepted by the commands.
var (
	tableFormats = []string{"table", "json", "yaml", "markdown"}
	lintFormats  = []string{"table", "json", "yaml", "markdown", "sarif"}
)

// CommonOptions contains flags shared across the dataset commands.
type CommonOptions struct {
	// Dataset
	Spec           string
	SpecConstraint string
	ARIAVersion    string

	// Output
	Format  string
	Output  string
	formats []string

	// Projection
	Search string
	Filter string

	// Execution
	Timeout time.Duration

	// Flags (bools grouped for alignment)
	ShowDeprecated bool
	Quiet          bool
}

// DefaultCommonOptions returns sensible defaults.
func DefaultCommonOptions(formats []string) CommonOptions {
	return CommonOptions{
		Spec:        system.DefaultSpecPath,
		ARIAVersion: values.DefaultARIAVersion.String(),
		Format:      system.DefaultFormat,
		Timeout:     time.Minute,
		formats:     formats,
	}
}

// RegisterFlags adds common flags to a cobra command.
func (opts *CommonOptions) RegisterFlags(cmd *cobra.Command) {
	// Dataset
	cmd.Flags().StringVar(&opts.Spec, "spec", opts.Spec,
		"Path of the markuplint html-spec index.json")
	cmd.Flags().StringVar(&opts.SpecConstraint, "spec-constraint", "",
		"Semver constraint the dataset version must satisfy (e.g. \">= 4.0.0\")")
	cmd.Flags().StringVar(&opts.ARIAVersion, "aria-version", opts.ARIAVersion,
		"WAI-ARIA version: 1.2 or 1.1")

	// Output
	cmd.Flags().StringVarP(&opts.Format, "format", "f", opts.Format,
		"Output format: "+strings.Join(opts.formats, ", "))
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "",
		"Output file path (default: stdout)")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false,
		"Quiet output (errors only)")

	// Execution
	cmd.Flags().DurationVar(&opts.Timeout, "timeout", opts.Timeout,
		"Global timeout for entire execution (0 to disable)")
}

// RegisterFilterFlags adds the table projection flags.
func (opts *CommonOptions) RegisterFilterFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&opts.ShowDeprecated, "show-deprecated", false,
		"Include deprecated and obsolete elements")
	cmd.Flags().StringVarP(&opts.Search, "search", "s", "",
		"Only rows whose tag name or selector contains this text (case-insensitive)")
	cmd.Flags().StringVar(&opts.Filter, "filter", "",
		"Row filter expression (e.g. \"conditional && implicitRole == 'img'\")")
}

// settingFlags maps settings file keys to the flags overriding them.
var settingFlags = map[string]string{
	"spec":                    "spec",
	"spec_version_constraint": "spec-constraint",
	"version":                 "aria-version",
	"format":                  "format",
	"show_deprecated":         "show-deprecated",
	"out_dir":                 "out",
	"serve.addr":              "addr",
	"serve.debounce":          "debounce",
}

// resolveSettings layers the settings file, ARIASHEET_* environment
// variables and explicitly set flags, in increasing precedence.
func resolveSettings(cmd *cobra.Command, base *system.Config) (*system.Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("spec", base.Spec)
	v.SetDefault("spec_version_constraint", base.SpecVersionConstraint)
	v.SetDefault("version", base.Version)
	v.SetDefault("format", base.Format)
	v.SetDefault("show_deprecated", base.ShowDeprecated)
	v.SetDefault("out_dir", base.OutDir)
	v.SetDefault("serve.addr", base.Serve.Addr)
	v.SetDefault("serve.debounce", base.Serve.Debounce)

	for key, name := range settingFlags {
		if flag := cmd.Flags().Lookup(name); flag != nil {
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("failed to bind --%s: %w", name, err)
			}
		}
	}

	cfg := &system.Config{
		Spec:                  v.GetString("spec"),
		SpecVersionConstraint: v.GetString("spec_version_constraint"),
		Version:               v.GetString("version"),
		Format:                v.GetString("format"),
		ShowDeprecated:        v.GetBool("show_deprecated"),
		OutDir:                v.GetString("out_dir"),
		Serve: system.ServeConfig{
			Addr:     v.GetString("serve.addr"),
			Debounce: v.GetString("serve.debounce"),
		},
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	return cfg, nil
}

// Apply copies resolved settings into the options.
func (opts *CommonOptions) Apply(cfg *system.Config) {
	opts.Spec = cfg.Spec
	opts.SpecConstraint = cfg.SpecVersionConstraint
	opts.ARIAVersion = cfg.Version
	opts.Format = cfg.Format
	opts.ShowDeprecated = cfg.ShowDeprecated
}

// ApplyToContext applies timeout to context.
// Returns new context and cancel function.
func (opts *CommonOptions) ApplyToContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if opts.Timeout > 0 {
		return context.WithTimeout(ctx, opts.Timeout)
	}
	// No timeout - return no-op cancel
	return ctx, func() {}
}

// ValidateFlags validates common options.
func (opts *CommonOptions) ValidateFlags() error {
	if !slices.Contains(opts.formats, opts.Format) {
		return fmt.Errorf("invalid format: %s (valid: %s)", opts.Format, strings.Join(opts.formats, ", "))
	}
	if _, err := values.NewARIAVersion(opts.ARIAVersion); err != nil {
		return err
	}
	return nil
}

// Version returns the selected WAI-ARIA version.
func (opts *CommonOptions) Version() values.ARIAVersion {
	v, err := values.NewARIAVersion(opts.ARIAVersion)
	if err != nil {
		return values.DefaultARIAVersion
	}
	return v
}

// Dataset returns the dataset location.
func (opts *CommonOptions) Dataset() dto.DatasetOptions {
	return dto.DatasetOptions{Path: opts.Spec, VersionConstraint: opts.SpecConstraint}
}

// Filters returns the table projection.
func (opts *CommonOptions) Filters() dto.FilterOptions {
	return dto.FilterOptions{
		ShowDeprecated:   opts.ShowDeprecated,
		Search:           opts.Search,
		FilterExpression: opts.Filter,
	}
}

// OpenOutput returns the output writer and a close function.
func (opts *CommonOptions) OpenOutput(cmd *cobra.Command) (io.Writer, func() error, error) {
	if opts.Output == "" || opts.Output == "-" {
		if opts.Quiet {
			return io.Discard, func() error { return nil }, nil
		}
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	//nolint:gosec // G304: User-controlled output file path is intentional
	file, err := os.Create(opts.Output)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return file, file.Close, nil
}

// colorEnabled reports whether terminal styling should be used.
func (opts *CommonOptions) colorEnabled() bool {
	if opts.Output != "" && opts.Output != "-" {
		return false
	}
	_, noColor := os.LookupEnv("NO_COLOR")
	return !noColor
}
