package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/droidtop/droidtop/internal/config"
	"github.com/droidtop/droidtop/internal/errors"
)

var initForce bool

// initCmd scaffolds ~/.config/droidtop/config.yaml interactively.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the droidtop configuration file",
	Long: `Initialize the droidtop configuration.

Writes ~/.config/droidtop/config.yaml after a short interactive setup
(theme and refresh interval).

Examples:
  droidtop init
  droidtop init --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return initCommand(initForce)
	},
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing config")
	rootCmd.AddCommand(initCmd)
}

func initCommand(force bool) error {
	configPath, err := config.DefaultPath()
	if err != nil {
		return err
	}

	// Check for existing config
	if _, err := os.Stat(configPath); err == nil && !force {
		var overwrite bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", configPath)).
					Value(&overwrite),
			),
		)
		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite.")
		}
		if !overwrite {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	cfg := config.DefaultConfig()
	intervalStr := cfg.Interval.String()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Color theme").
				Options(
					huh.NewOption("synthwave (neon, truecolor)", "synthwave"),
					huh.NewOption("plain (basic ANSI)", "plain"),
				).
				Value(&cfg.Theme),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Refresh interval").
				Description("Between 100ms and 2s").
				Placeholder("500ms").
				Value(&intervalStr).
				Validate(func(s string) error {
					d, err := time.ParseDuration(s)
					if err != nil {
						return fmt.Errorf("use a duration like 500ms or 1s")
					}
					if d < config.MinInterval || d > config.MaxInterval {
						return fmt.Errorf("interval must be between %s and %s", config.MinInterval, config.MaxInterval)
					}
					return nil
				}),
		),
	)

	if err := form.Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Setup cancelled", "")
	}

	cfg.Interval, _ = time.ParseDuration(intervalStr)

	if err := writeConfigFile(configPath, cfg); err != nil {
		return err
	}

	fmt.Printf("Wrote %s\n", configPath)
	return nil
}

// writeConfigFile marshals the config to YAML and writes it, creating the
// config directory if needed.
func writeConfigFile(path string, cfg *config.Config) error {
	// time.Duration marshals as nanoseconds in yaml; write the string form
	// the loader parses back.
	doc := map[string]interface{}{
		"interval":        cfg.Interval.String(),
		"bar_length":      cfg.BarLength,
		"theme":           cfg.Theme,
		"color":           cfg.Color,
		"storage_path":    cfg.StoragePath,
		"battery_command": cfg.BatteryCommand,
		"thresholds": map[string]int{
			"warning":  cfg.Thresholds.Warning,
			"critical": cfg.Thresholds.Critical,
		},
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to marshal config", "")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Failed to create %s", filepath.Dir(path)),
			"Check directory permissions.")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Failed to write %s", path),
			"Check file permissions.")
	}
	return nil
}
