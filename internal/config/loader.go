package config

import (
	"os"
	"path/filepath"

	"github.com/droidtop/droidtop/internal/errors"
	"github.com/spf13/viper"
)

const (
	// ConfigDir is the directory under $HOME holding the config file.
	ConfigDir = ".config/droidtop"
	// ConfigFileName is the config file name.
	ConfigFileName = "config.yaml"
)

// Load reads config from the specified path.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Config file not found",
				"Run 'droidtop init' to create one, or specify a path with --config")
		}
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to read config file",
			"Check the file exists and is valid YAML")
	}

	return parseConfig(v)
}

// Find locates the config file using the search order:
// 1. Explicit path (from --config flag)
// 2. ~/.config/droidtop/config.yaml
//
// Returns the path to the config file, or empty string if not found.
func Find(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			if os.IsNotExist(err) {
				return "", errors.WrapWithCode(err, errors.ErrConfig,
					"Specified config file not found: "+explicit,
					"Check the path is correct")
			}
			return "", errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot access config file: "+explicit,
				"Check file permissions")
		}
		return explicit, nil
	}

	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "", nil
	}

	path := filepath.Join(home, ConfigDir, ConfigFileName)
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	return "", nil
}

// LoadOrDefault loads config from the found path, or returns defaults if no
// config file exists. This lets the dashboard start without any setup.
func LoadOrDefault(explicit string) (*Config, error) {
	path, err := Find(explicit)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return DefaultConfig(), nil
	}
	return Load(path)
}

// DefaultPath returns where 'droidtop init' writes the config file.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot determine home directory",
			"Set the HOME environment variable")
	}
	return filepath.Join(home, ConfigDir, ConfigFileName), nil
}

// parseConfig unmarshals viper state into a Config, applies defaults for
// unset keys, and validates the result.
func parseConfig(v *viper.Viper) (*Config, error) {
	cfg := DefaultConfig()

	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid config file structure",
			"Compare your config against 'droidtop init' output")
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
