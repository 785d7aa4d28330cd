package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/droidtop/droidtop/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 500*time.Millisecond, cfg.Interval)
	assert.Equal(t, 25, cfg.BarLength)
	assert.Equal(t, "synthwave", cfg.Theme)
	assert.Equal(t, "auto", cfg.Color)
	assert.Equal(t, 70, cfg.Thresholds.Warning)
	assert.Equal(t, 90, cfg.Thresholds.Critical)
	assert.Equal(t, "termux-battery-status", cfg.BatteryCommand)

	// Defaults must always pass validation
	assert.NoError(t, Validate(cfg))
}

func TestLoad_FullConfig(t *testing.T) {
	path := writeConfig(t, `
interval: 1s
bar_length: 30
theme: plain
color: never
thresholds:
  warning: 60
  critical: 85
storage_path: /data
battery_command: termux-battery-status
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, time.Second, cfg.Interval)
	assert.Equal(t, 30, cfg.BarLength)
	assert.Equal(t, "plain", cfg.Theme)
	assert.Equal(t, "never", cfg.Color)
	assert.Equal(t, 60, cfg.Thresholds.Warning)
	assert.Equal(t, 85, cfg.Thresholds.Critical)
	assert.Equal(t, "/data", cfg.StoragePath)
}

func TestLoad_PartialConfigKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "interval: 250ms\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 250*time.Millisecond, cfg.Interval)
	assert.Equal(t, DefaultBarLength, cfg.BarLength)
	assert.Equal(t, DefaultTheme, cfg.Theme)
	assert.Equal(t, 90, cfg.Thresholds.Critical)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestLoadOrDefault_NoConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadOrDefault("")
	require.NoError(t, err)
	assert.Equal(t, DefaultInterval, cfg.Interval)
}

func TestFind_Explicit(t *testing.T) {
	path := writeConfig(t, "interval: 500ms\n")

	found, err := Find(path)
	require.NoError(t, err)
	assert.Equal(t, path, found)

	_, err = Find(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestFind_HomeConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	// No config yet
	found, err := Find("")
	require.NoError(t, err)
	assert.Empty(t, found)

	// Create ~/.config/droidtop/config.yaml
	dir := filepath.Join(home, ConfigDir)
	require.NoError(t, os.MkdirAll(dir, 0755))
	path := filepath.Join(dir, ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("theme: plain\n"), 0644))

	found, err = Find("")
	require.NoError(t, err)
	assert.Equal(t, path, found)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults valid", func(c *Config) {}, false},
		{"interval at minimum", func(c *Config) { c.Interval = MinInterval }, false},
		{"interval at maximum", func(c *Config) { c.Interval = MaxInterval }, false},
		{"interval too fast", func(c *Config) { c.Interval = 50 * time.Millisecond }, true},
		{"interval too slow", func(c *Config) { c.Interval = 5 * time.Second }, true},
		{"bar length too short", func(c *Config) { c.BarLength = 2 }, true},
		{"bar length too long", func(c *Config) { c.BarLength = 100 }, true},
		{"unknown theme", func(c *Config) { c.Theme = "vaporwave" }, true},
		{"unknown color mode", func(c *Config) { c.Color = "sometimes" }, true},
		{"empty color mode ok", func(c *Config) { c.Color = "" }, false},
		{"warning above critical", func(c *Config) { c.Thresholds = Thresholds{Warning: 95, Critical: 90} }, true},
		{"critical above 100", func(c *Config) { c.Thresholds = Thresholds{Warning: 70, Critical: 110} }, true},
		{"zero warning", func(c *Config) { c.Thresholds = Thresholds{Warning: 0, Critical: 90} }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := Validate(cfg)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsCode(err, errors.ErrConfig))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoad_InvalidValuesRejected(t *testing.T) {
	path := writeConfig(t, "interval: 10s\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}
