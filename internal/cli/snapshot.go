package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/droidtop/droidtop/internal/dashboard"
	"github.com/droidtop/droidtop/internal/errors"
	"github.com/droidtop/droidtop/internal/logger"
	"github.com/droidtop/droidtop/internal/metrics"
)

var snapshotJSON bool

// snapshotCmd samples the device once and prints the result, for scripts and
// terminals where the full-screen dashboard is not wanted.
var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Print one metrics sample and exit",
	Long: `Collect a single metrics snapshot and print it to stdout.

Useful in scripts, cron jobs, and non-interactive shells.

Examples:
  droidtop snapshot
  droidtop snapshot --json | jq .cpu`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return snapshotCommand(snapshotJSON)
	},
}

func init() {
	snapshotCmd.Flags().BoolVar(&snapshotJSON, "json", false, "print the snapshot as JSON")
	rootCmd.AddCommand(snapshotCmd)
}

func snapshotCommand(asJSON bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	source := metrics.NewSystemSource(resolveStoragePath(cfg.StoragePath), cfg.BatteryCommand, logger.Default())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	snap := source.Sample(ctx)

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(snap); err != nil {
			return errors.WrapWithCode(err, errors.ErrSource,
				"Failed to encode snapshot", "")
		}
		return nil
	}

	fmt.Print(renderSnapshotText(snap))
	return nil
}

// renderSnapshotText renders a snapshot as plain aligned text.
func renderSnapshotText(snap *metrics.Snapshot) string {
	var b strings.Builder

	row := func(label, value string) {
		fmt.Fprintf(&b, "%-12s %s\n", label, value)
	}

	row("uptime", dashboard.FormatUptime(snap.Uptime))

	if cpu := snap.CPU; cpu != nil {
		row("cpu", fmt.Sprintf("%s (%d cores)", dashboard.FormatPercent(cpu.Percent), cpu.Cores))
	} else {
		row("cpu", dashboard.Placeholder)
	}

	if mem := snap.Memory; mem != nil {
		row("memory", fmt.Sprintf("%s / %s (%s)",
			dashboard.FormatBytes(mem.UsedBytes), dashboard.FormatBytes(mem.TotalBytes), dashboard.FormatPercent(mem.Percent)))
	} else {
		row("memory", dashboard.Placeholder)
	}

	switch swap := snap.Swap; {
	case swap == nil:
		row("swap", dashboard.Placeholder)
	case swap.TotalBytes == 0:
		row("swap", "not configured")
	default:
		row("swap", fmt.Sprintf("%s / %s", dashboard.FormatBytes(swap.UsedBytes), dashboard.FormatBytes(swap.TotalBytes)))
	}

	if st := snap.Storage; st != nil {
		row("storage", fmt.Sprintf("%s used of %s on %s",
			dashboard.FormatBytes(st.UsedBytes), dashboard.FormatBytes(st.TotalBytes), st.Path))
	} else {
		row("storage", dashboard.Placeholder)
	}

	if bat := snap.Battery; bat != nil {
		row("battery", fmt.Sprintf("%s %s", dashboard.FormatPercent(bat.Percent), bat.Status))
	} else {
		row("battery", dashboard.Placeholder)
	}

	if net := snap.Network; net != nil {
		row("network", fmt.Sprintf("↓%s ↑%s (%s)",
			dashboard.FormatRate(net.DownBytesPerSec), dashboard.FormatRate(net.UpBytesPerSec), net.IPv4))
	} else {
		row("network", dashboard.Placeholder)
	}

	if dev := snap.Device; dev != nil {
		model := strings.TrimSpace(dev.Manufacturer + " " + dev.Model)
		if model != "" {
			row("device", model)
		}
		if dev.OSVersion != "" {
			row("os", dev.OSVersion)
		}
	}

	return b.String()
}
