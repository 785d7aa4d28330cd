package dashboard

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// Placeholder is rendered for any metric field that could not be read.
const Placeholder = "N/A"

// byteUnits above the base unit, 1024-scaled.
var byteUnits = []string{"K", "M", "G", "T", "P"}

// FormatBytes renders a byte count in compact 1024-scaled form: values below
// one KiB as a bare integer ("1023B"), everything above with one decimal and
// a single unit letter ("1.0K", "23.4G").
func FormatBytes(n uint64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%dB", n)
	}

	div, exp := uint64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f%s", float64(n)/float64(div), byteUnits[exp])
}

// FormatRate renders a bytes-per-second rate using the same scale as
// FormatBytes.
func FormatRate(bytesPerSecond float64) string {
	if bytesPerSecond < 0 {
		bytesPerSecond = 0
	}
	return FormatBytes(uint64(bytesPerSecond)) + "/s"
}

// FormatPercent renders a percentage with one decimal.
func FormatPercent(percent float64) string {
	return fmt.Sprintf("%.1f%%", percent)
}

// FormatCount renders an integer with comma grouping ("1,234,567").
func FormatCount(n uint64) string {
	return humanize.Comma(int64(n))
}

// FormatUptime renders a duration as "1d 2h 3m", dropping leading zero
// units. A zero duration means the uptime could not be read.
func FormatUptime(d time.Duration) string {
	if d <= 0 {
		return Placeholder
	}

	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh %dm", days, hours, minutes)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	default:
		return fmt.Sprintf("%dm", minutes)
	}
}

// Clip truncates a string to width, adding ellipsis when it was cut.
func Clip(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if len(s) <= width {
		return s
	}
	if width <= 3 {
		return s[:width]
	}
	return s[:width-3] + "..."
}

// PadRight pads a string with spaces to exactly width, clipping when longer.
func PadRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if len(s) >= width {
		return Clip(s, width)
	}
	return s + strings.Repeat(" ", width-len(s))
}
