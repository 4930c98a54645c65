package system

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reglet-dev/ariasheet/internal/domain/values"
)

func TestConfigLoader_Load_FileNotExists(t *testing.T) {
	loader := NewConfigLoader()
	cfg, err := loader.Load("/nonexistent/.ariasheet.yaml")

	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestConfigLoader_Load_ValidConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, DefaultConfigFile)

	yaml := `
spec: vendor/html-spec/index.json
version: "1.1"
show_deprecated: true
spec_version_constraint: ">= 4.0.0"
serve:
  debounce: 1s
`
	err := os.WriteFile(configPath, []byte(yaml), 0600)
	require.NoError(t, err)

	cfg, err := NewConfigLoader().Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, "vendor/html-spec/index.json", cfg.Spec)
	assert.True(t, cfg.ShowDeprecated)
	assert.Equal(t, time.Second, cfg.Serve.DebounceDuration())

	// keys missing from the file keep their defaults
	assert.Equal(t, DefaultFormat, cfg.Format)
	assert.Equal(t, DefaultAddr, cfg.Serve.Addr)

	version, err := cfg.ARIAVersion()
	require.NoError(t, err)
	assert.Equal(t, values.ARIA11, version)

	constraint, err := cfg.VersionConstraint()
	require.NoError(t, err)
	require.NotNil(t, constraint)
	require.NoError(t, cfg.Validate())
}

func TestConfigLoader_Load_InvalidYAML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), DefaultConfigFile)
	require.NoError(t, os.WriteFile(configPath, []byte("version: [1.2"), 0600))

	_, err := NewConfigLoader().Load(configPath)
	assert.Error(t, err)
}

func TestConfigLoader_SaveRoundTrip(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "nested", DefaultConfigFile)

	cfg := DefaultConfig()
	cfg.Version = "1.1"
	cfg.Format = "json"

	loader := NewConfigLoader()
	require.NoError(t, loader.Save(configPath, cfg))

	loaded, err := loader.Load(configPath)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"bad_version", func(c *Config) { c.Version = "2.0" }, "unsupported ARIA version"},
		{"bad_constraint", func(c *Config) { c.SpecVersionConstraint = ">>> 1" }, "spec_version_constraint"},
		{"bad_debounce", func(c *Config) { c.Serve.Debounce = "soon" }, "serve.debounce"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestServeConfig_DebounceDuration_Fallback(t *testing.T) {
	assert.Equal(t, DefaultDebounce, ServeConfig{}.DebounceDuration())
	assert.Equal(t, DefaultDebounce, ServeConfig{Debounce: "-1s"}.DebounceDuration())
}
