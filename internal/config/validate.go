package config

import (
	"fmt"

	"github.com/droidtop/droidtop/internal/errors"
)

// knownThemes are the palette names the dashboard accepts.
var knownThemes = map[string]bool{
	"synthwave": true,
	"plain":     true,
}

// Validate checks a Config for values the dashboard cannot run with.
func Validate(cfg *Config) error {
	if cfg.Interval < MinInterval || cfg.Interval > MaxInterval {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Refresh interval %s is out of range", cfg.Interval),
			fmt.Sprintf("Use a value between %s and %s", MinInterval, MaxInterval))
	}

	if cfg.BarLength < 5 || cfg.BarLength > 60 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Bar length %d is out of range", cfg.BarLength),
			"Use a value between 5 and 60 glyphs")
	}

	if !knownThemes[cfg.Theme] {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Unknown theme %q", cfg.Theme),
			"Available themes: synthwave, plain")
	}

	switch cfg.Color {
	case "", "auto", "always", "never":
	default:
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Unknown color mode %q", cfg.Color),
			"Use auto, always, or never")
	}

	t := cfg.Thresholds
	if t.Warning <= 0 || t.Critical > 100 || t.Warning >= t.Critical {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Invalid thresholds: warning=%d critical=%d", t.Warning, t.Critical),
			"Thresholds must satisfy 0 < warning < critical <= 100")
	}

	return nil
}
