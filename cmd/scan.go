package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/BVE-Reborn/bve-reborn-sub001/harness"
)

var (
	scanWorkers    int           // Number of parallel workers
	scanTimeout    time.Duration // Per-file budget
	scanIsolate    bool          // Parse each file in a child process
	scanReportPath string        // JSON report output path
	scanConfigPath string        // YAML scan config
)

var scanCmd = &cobra.Command{
	Use:   "scan ROOT",
	Short: "Parse every recognized configuration file under a folder",
	Long: "Walk ROOT, parse every file a registered format recognizes, and tally clean files, files with " +
		"diagnostics and parser panics. Flags override values from --config.",
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := harness.DefaultConfig()
		if scanConfigPath != "" {
			loaded, err := harness.LoadConfig(scanConfigPath)
			if err != nil {
				logrus.Fatalf("Failed to load scan config: %v", err)
			}
			cfg = loaded
		}
		applyScanFlags(cmd, &cfg)
		if err := cfg.Validate(); err != nil {
			logrus.Fatalf("Invalid scan config: %v", err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		report, err := harness.Scan(ctx, cfg, args[0])
		if report == nil {
			logrus.Fatalf("Scan failed: %v", err)
		}
		if err != nil {
			logrus.Warnf("Scan stopped early: %v", err)
		}

		if scanReportPath != "" {
			if err := report.WriteJSON(scanReportPath); err != nil {
				logrus.Fatalf("%v", err)
			}
			logrus.Infof("Report written to %s", scanReportPath)
		}
		fmt.Fprintln(cmd.OutOrStdout(), report.String())
	},
}

// applyScanFlags lets explicitly set flags win over the config file.
func applyScanFlags(cmd *cobra.Command, cfg *harness.Config) {
	if cmd.Flags().Changed("workers") {
		cfg.Workers = scanWorkers
	}
	if cmd.Flags().Changed("timeout") {
		cfg.Timeout = scanTimeout
	}
	if cmd.Flags().Changed("isolate") {
		cfg.Isolate = scanIsolate
	}
}

func init() {
	defaults := harness.DefaultConfig()
	scanCmd.Flags().IntVar(&scanWorkers, "workers", defaults.Workers, "Number of parallel workers")
	scanCmd.Flags().DurationVar(&scanTimeout, "timeout", defaults.Timeout, "Per-file parse budget")
	scanCmd.Flags().BoolVar(&scanIsolate, "isolate", false, "Parse each file in a child process that is killed on timeout")
	scanCmd.Flags().StringVar(&scanReportPath, "report", "", "Write a JSON report to this path")
	scanCmd.Flags().StringVar(&scanConfigPath, "config", "", "YAML scan config (workers, timeout, isolate, formats, exclude)")

	rootCmd.AddCommand(scanCmd)
}
