// Package container provides dependency injection for the application.
package container

import (
	"log/slog"

	"github.com/reglet-dev/ariasheet/internal/application/services"
	"github.com/reglet-dev/ariasheet/internal/infrastructure/dataset"
	"github.com/reglet-dev/ariasheet/internal/infrastructure/htmldoc"
	"github.com/reglet-dev/ariasheet/internal/infrastructure/output"
	"github.com/reglet-dev/ariasheet/internal/infrastructure/site"
	"github.com/reglet-dev/ariasheet/internal/infrastructure/system"
)

// Container holds all application dependencies.
type Container struct {
	sheets     *services.SheetService
	tables     *services.TableQueryUseCase
	lookup     *services.LookupUseCase
	lint       *services.LintUseCase
	buildSite  *services.BuildSiteUseCase
	formatters *output.FormatterFactory
	systemCfg  *system.Config
	logger     *slog.Logger
}

// Options configure the container.
type Options struct {
	Logger *slog.Logger
	// SystemConfigPath is the settings file; a missing file yields defaults
	SystemConfigPath string
	// SystemConfig overrides loading from SystemConfigPath when set
	SystemConfig *system.Config
}

// New creates a new dependency injection container.
func New(opts Options) (*Container, error) {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	systemCfg := opts.SystemConfig
	if systemCfg == nil {
		path := opts.SystemConfigPath
		if path == "" {
			path = system.DefaultConfigFile
		}
		cfg, err := system.NewConfigLoader().Load(path)
		if err != nil {
			opts.Logger.Debug("failed to load system config, using defaults", "error", err)
			cfg = system.DefaultConfig()
		}
		systemCfg = cfg
	}

	// Infrastructure adapters
	loader := dataset.NewLoader()
	parser := htmldoc.NewParser()
	writer := site.NewWriter(opts.Logger)

	// Application services
	sheets := services.NewSheetService(loader, opts.Logger)

	return &Container{
		sheets:     sheets,
		tables:     services.NewTableQueryUseCase(sheets),
		lookup:     services.NewLookupUseCase(sheets),
		lint:       services.NewLintUseCase(sheets, parser, opts.Logger),
		buildSite:  services.NewBuildSiteUseCase(sheets, writer, opts.Logger),
		formatters: output.NewFormatterFactory(),
		systemCfg:  systemCfg,
		logger:     opts.Logger,
	}, nil
}

// Sheets returns the memoizing sheet service.
func (c *Container) Sheets() *services.SheetService {
	return c.sheets
}

// TableQueryUseCase returns the table query use case.
func (c *Container) TableQueryUseCase() *services.TableQueryUseCase {
	return c.tables
}

// LookupUseCase returns the lookup use case.
func (c *Container) LookupUseCase() *services.LookupUseCase {
	return c.lookup
}

// LintUseCase returns the lint use case.
func (c *Container) LintUseCase() *services.LintUseCase {
	return c.lint
}

// BuildSiteUseCase returns the build site use case.
func (c *Container) BuildSiteUseCase() *services.BuildSiteUseCase {
	return c.buildSite
}

// Formatters returns the output formatter factory.
func (c *Container) Formatters() *output.FormatterFactory {
	return c.formatters
}

// SystemConfig returns the system configuration.
func (c *Container) SystemConfig() *system.Config {
	return c.systemCfg
}

// Logger returns the configured logger.
func (c *Container) Logger() *slog.Logger {
	return c.logger
}
