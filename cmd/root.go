package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	cfgpkg "github.com/pediametrics/growthchart-cli/internal/config"
)

var (
	// Global flags
	cfgFile string
	debug   bool

	// Loaded configuration
	cfg *cfgpkg.Global

	// Debug logger; no-op unless --debug is set.
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "growthchart",
	Short: "Plot a child's growth record against WHO reference curves",
	Long: `growthchart reads a CSV or TSV growth record (age or date plus height
and/or weight), enriches each row with WHO growth-reference SD bands from the
configured lookup service, and renders a height-for-age, weight-for-age or
BMI-for-age chart as a PNG.`,
}

// Execute is the entry point called by main.main()
func Execute() {
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.growthchart/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
}

func loadConfig() {
	// The debug logger must come up even when the config cannot be loaded;
	// that is exactly when diagnostics are wanted.
	if debug {
		if l, err := zap.NewDevelopment(); err == nil {
			logger = l
		}
	}

	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: defaults still allow most commands to run
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		return
	}
	cfg = c
}
