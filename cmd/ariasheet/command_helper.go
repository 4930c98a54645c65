package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/reglet-dev/ariasheet/internal/application/ports"
	"github.com/reglet-dev/ariasheet/internal/infrastructure/container"
	"github.com/reglet-dev/ariasheet/internal/infrastructure/system"
	"github.com/reglet-dev/ariasheet/internal/version"
)

// CommandContext provides common command dependencies.
// Eliminates repetitive container initialization across CLI commands.
type CommandContext struct {
	Container *container.Container
	Logger    *slog.Logger
	Context   context.Context
	// Settings are the settings file overlaid with env and flags
	Settings *system.Config
}

// CommandHandler is a function that executes with initialized dependencies.
// Commands focus on business logic, not infrastructure setup.
type CommandHandler func(*CommandContext, *cobra.Command, []string) error

// withContainer wraps a command handler with container initialization.
// Handles common setup: config loading, logger creation, dependency injection.
//
// Usage:
//
//	cmd := &cobra.Command{
//	    Use: "roles",
//	    RunE: withContainer(func(ctx *CommandContext, cmd *cobra.Command, args []string) error {
//	        resp, err := ctx.Container.TableQueryUseCase().Roles(ctx.Context, req)
//	        ...
//	    }),
//	}
func withContainer(handler CommandHandler) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		// Get config path from flag
		configPath, _ := cmd.Flags().GetString("config")
		if configPath == "" {
			configPath = defaultConfigPath(system.DefaultConfigFile)
		}

		// Initialize logger
		logger := slog.Default()

		cfg, err := system.NewConfigLoader().Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config %s: %w", configPath, err)
		}
		settings, err := resolveSettings(cmd, cfg)
		if err != nil {
			return err
		}
		logger.Debug("settings resolved", "config", configPath, "spec", settings.Spec, "version", settings.Version)

		// Initialize container with dependencies
		c, err := container.New(container.Options{
			SystemConfig: settings,
			Logger:       logger,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize application: %w", err)
		}

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		// Execute handler
		return handler(&CommandContext{
			Container: c,
			Logger:    logger,
			Context:   ctx,
			Settings:  settings,
		}, cmd, args)
	}
}

// withOptions resolves the common options before running the handler.
func withOptions(opts *CommonOptions, handler CommandHandler) func(*cobra.Command, []string) error {
	return withContainer(func(cc *CommandContext, cmd *cobra.Command, args []string) error {
		opts.Apply(cc.Settings)
		if err := opts.ValidateFlags(); err != nil {
			return err
		}

		ctx, cancel := opts.ApplyToContext(cc.Context)
		defer cancel()
		cc.Context = ctx

		return handler(cc, cmd, args)
	})
}

// formatWith opens the output, creates the formatter for the selected format
// and hands it to render.
func formatWith(cc *CommandContext, cmd *cobra.Command, opts *CommonOptions, render func(ports.OutputFormatter) error) error {
	w, closeFn, err := opts.OpenOutput(cmd)
	if err != nil {
		return err
	}

	formatter, err := cc.Container.Formatters().Create(opts.Format, w, ports.FormatterOptions{
		Indent:      true,
		Color:       opts.colorEnabled(),
		ToolVersion: version.Version,
	})
	if err != nil {
		_ = closeFn()
		return err
	}

	if err := render(formatter); err != nil {
		_ = closeFn()
		return fmt.Errorf("failed to format output: %w", err)
	}
	if err := closeFn(); err != nil {
		return fmt.Errorf("failed to close output: %w", err)
	}
	if opts.Output != "" && opts.Output != "-" {
		cc.Logger.Info("output written", "file", opts.Output, "format", opts.Format)
	}
	return nil
}
