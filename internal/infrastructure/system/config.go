// Package system provides infrastructure for tool-level configuration.
// This is the .ariasheet.yaml settings file written by `ariasheet init`.
package system

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/goccy/go-yaml"

	"github.com/reglet-dev/ariasheet/internal/domain/values"
)

// DefaultConfigFile is the settings file looked up in the working directory.
const DefaultConfigFile = ".ariasheet.yaml"

// Defaults used when a key is missing.
const (
	DefaultSpecPath = "node_modules/@markuplint/html-spec/index.json"
	DefaultFormat   = "table"
	DefaultOutDir   = "dist"
	DefaultAddr     = "127.0.0.1:8080"
	DefaultDebounce = 300 * time.Millisecond
)

// Config represents the settings file.
type Config struct {
	// Spec is the path of the upstream index.json
	Spec string `yaml:"spec"`
	// Version is the default WAI-ARIA version
	Version               string      `yaml:"version"`
	ShowDeprecated        bool        `yaml:"show_deprecated"`
	Format                string      `yaml:"format"`
	OutDir                string      `yaml:"out_dir"`
	SpecVersionConstraint string      `yaml:"spec_version_constraint,omitempty"`
	Serve                 ServeConfig `yaml:"serve"`
}

// ServeConfig configures the preview server.
type ServeConfig struct {
	Addr string `yaml:"addr"`
	// Debounce is a Go duration string such as "300ms"
	Debounce string `yaml:"debounce"`
}

// DebounceDuration parses the debounce interval, falling back to the default.
func (c ServeConfig) DebounceDuration() time.Duration {
	d, err := time.ParseDuration(c.Debounce)
	if err != nil || d <= 0 {
		return DefaultDebounce
	}
	return d
}

// ARIAVersion returns the configured version, the default when unset.
func (c *Config) ARIAVersion() (values.ARIAVersion, error) {
	return values.NewARIAVersion(c.Version)
}

// VersionConstraint parses the dataset version constraint; nil when unset.
func (c *Config) VersionConstraint() (*semver.Constraints, error) {
	if c.SpecVersionConstraint == "" {
		return nil, nil
	}
	constraint, err := semver.NewConstraint(c.SpecVersionConstraint)
	if err != nil {
		return nil, fmt.Errorf("invalid spec_version_constraint %q: %w", c.SpecVersionConstraint, err)
	}
	return constraint, nil
}

// Validate checks the values that would otherwise fail late.
func (c *Config) Validate() error {
	var errs []error
	if _, err := c.ARIAVersion(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.VersionConstraint(); err != nil {
		errs = append(errs, err)
	}
	if c.Serve.Debounce != "" {
		if _, err := time.ParseDuration(c.Serve.Debounce); err != nil {
			errs = append(errs, fmt.Errorf("invalid serve.debounce: %w", err))
		}
	}
	return errors.Join(errs...)
}

// ConfigLoader loads the settings file from disk.
type ConfigLoader struct{}

// NewConfigLoader creates a new config loader.
func NewConfigLoader() *ConfigLoader {
	return &ConfigLoader{}
}

// DefaultConfig returns a Config with defaults for all fields.
// This is used when no settings file exists.
func DefaultConfig() *Config {
	return &Config{
		Spec:    DefaultSpecPath,
		Version: values.DefaultARIAVersion.String(),
		Format:  DefaultFormat,
		OutDir:  DefaultOutDir,
		Serve: ServeConfig{
			Addr:     DefaultAddr,
			Debounce: DefaultDebounce.String(),
		},
	}
}

// Load loads the settings from the specified path.
// If the file does not exist, returns DefaultConfig().
// Keys missing from the file keep their defaults.
func (l *ConfigLoader) Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	//nolint:gosec // G304: path is the user-provided settings file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return config, nil
}

// Save writes the settings file, creating parent directories.
func (l *ConfigLoader) Save(path string, config *Config) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
