package cli

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/droidtop/droidtop/internal/config"
	"github.com/droidtop/droidtop/internal/dashboard"
	"github.com/droidtop/droidtop/internal/errors"
	"github.com/droidtop/droidtop/internal/logger"
	"github.com/droidtop/droidtop/internal/metrics"
)

// termuxHome is the Termux app data root, used as the default storage mount
// when present.
const termuxHome = "/data/data/com.termux/files/home"

// dashboardCommand starts the full-screen TUI dashboard.
func dashboardCommand() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New(errors.ErrTerm,
			"Standard output is not a terminal",
			"Run droidtop in an interactive terminal, or use 'droidtop snapshot' for one-shot output.")
	}

	applyColorMode(cfg.Color)

	log := logger.Default()
	source := metrics.NewSystemSource(resolveStoragePath(cfg.StoragePath), cfg.BatteryCommand, log)
	model := dashboard.NewModel(cfg, source, log)

	// Alt screen entry/exit and signal-driven terminal restore are handled
	// by the program; every exit path leaves the terminal cooked.
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrTerm,
			"Dashboard terminated unexpectedly",
			"Check the terminal supports the alternate screen, or set --color never.")
	}
	return nil
}

// loadConfig loads the effective configuration: file (or defaults), then
// command-line flag overrides, then validation.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadOrDefault(cfgFileFlag)
	if err != nil {
		return nil, err
	}

	if intervalFlag != "" {
		parsed, err := time.ParseDuration(intervalFlag)
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				fmt.Sprintf("Invalid interval: %s", intervalFlag),
				"Use a duration like 500ms, 1s, or 2s.")
		}
		cfg.Interval = parsed
	}
	if barLengthFlag > 0 {
		cfg.BarLength = barLengthFlag
	}
	if themeFlag != "" {
		cfg.Theme = themeFlag
	}
	if colorFlag != "" {
		cfg.Color = colorFlag
	}

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyColorMode forces the lipgloss color profile for the non-auto modes.
// "auto" leaves detection to the terminal environment.
func applyColorMode(mode string) {
	switch mode {
	case "never":
		lipgloss.SetColorProfile(termenv.Ascii)
	case "always":
		lipgloss.SetColorProfile(termenv.TrueColor)
	}
}

// resolveStoragePath picks the storage mount to sample: the configured path,
// else the Termux data root when present, else the filesystem root.
func resolveStoragePath(configured string) string {
	if configured != "" {
		return configured
	}
	if info, err := os.Stat(termuxHome); err == nil && info.IsDir() {
		return termuxHome
	}
	return "/"
}
