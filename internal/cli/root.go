package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Root command flags
var (
	cfgFileFlag   string
	intervalFlag  string
	barLengthFlag int
	themeFlag     string
	colorFlag     string
)

// rootCmd starts the dashboard; a bare invocation is the primary use.
var rootCmd = &cobra.Command{
	Use:   "droidtop",
	Short: "Live system metrics dashboard for Termux",
	Long: `droidtop is a full-screen terminal dashboard for phones running Termux
and other small Unix boxes.

It samples CPU, memory, storage, battery, and network metrics on a fixed
interval and renders them with colored usage bars across seven tabs.

Keyboard shortcuts:
  q / Ctrl+C  Quit
  up/k        Previous tab
  down/j      Next tab
  1-7         Jump to tab
  r           Force refresh

Examples:
  droidtop
  droidtop --interval 1s --theme plain
  droidtop snapshot --json`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return dashboardCommand()
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFileFlag, "config", "", "config file (default ~/.config/droidtop/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&colorFlag, "color", "", "color mode: auto, always, never")

	rootCmd.Flags().StringVar(&intervalFlag, "interval", "", "refresh interval (e.g. 500ms, 1s)")
	rootCmd.Flags().IntVar(&barLengthFlag, "bar-length", 0, "usage bar length in cells")
	rootCmd.Flags().StringVar(&themeFlag, "theme", "", "color theme: synthwave, plain")
}
