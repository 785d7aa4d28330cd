package config

import "time"

// Defaults for the dashboard configuration.
const (
	DefaultInterval  = 500 * time.Millisecond
	DefaultBarLength = 25
	DefaultTheme     = "synthwave"

	// MinInterval and MaxInterval bound the refresh cadence. Faster than
	// 100ms burns battery on a phone for no visible benefit; slower than
	// 2s makes the clock in the header visibly stall.
	MinInterval = 100 * time.Millisecond
	MaxInterval = 2 * time.Second
)

// Config represents the complete droidtop configuration file.
type Config struct {
	// Interval is the refresh cadence of the dashboard tick loop.
	Interval time.Duration `yaml:"interval" mapstructure:"interval"`

	// BarLength is the glyph count of usage bars.
	BarLength int `yaml:"bar_length" mapstructure:"bar_length"`

	// Theme selects the color palette: "synthwave" or "plain".
	Theme string `yaml:"theme" mapstructure:"theme"`

	// Color mode: "auto", "always", or "never".
	// "auto" disables color when output is not a terminal.
	Color string `yaml:"color" mapstructure:"color"`

	// Thresholds control the warning/critical color bands for usage bars.
	Thresholds Thresholds `yaml:"thresholds" mapstructure:"thresholds"`

	// StoragePath is the mount point sampled for the Storage tab.
	// Empty means auto-detect (Termux data root if present, else "/").
	StoragePath string `yaml:"storage_path" mapstructure:"storage_path"`

	// BatteryCommand is the executable queried for battery status.
	BatteryCommand string `yaml:"battery_command" mapstructure:"battery_command"`
}

// Thresholds are usage percentages at which bar colors change.
type Thresholds struct {
	Warning  int `yaml:"warning" mapstructure:"warning"`
	Critical int `yaml:"critical" mapstructure:"critical"`
}

// DefaultConfig returns a Config populated with defaults.
func DefaultConfig() *Config {
	return &Config{
		Interval:       DefaultInterval,
		BarLength:      DefaultBarLength,
		Theme:          DefaultTheme,
		Color:          "auto",
		Thresholds:     Thresholds{Warning: 70, Critical: 90},
		BatteryCommand: "termux-battery-status",
	}
}
