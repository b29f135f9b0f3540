// Package main is the entry point for the ComplyRadar CLI. ComplyRadar
// turns sensitive-data classification findings into risk-assessed,
// paginated compliance reports, and runs the upload/report web service
// around that pipeline.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/complyradar/complyradar/cmd/report"
	"github.com/complyradar/complyradar/cmd/serve"
	"github.com/complyradar/complyradar/pkg/logger"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

var (
	debug     bool
	logFormat string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "complyradar",
		Short: "Generate compliance reports from sensitive-data scan findings",
		Long: `ComplyRadar ingests findings documents produced by a sensitive-data
classification scan, classifies each detection into a risk tier, derives
composite compliance metrics, and renders a paginated PDF report.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			logger.SetupLogger(debug, logFormat)
		},
	}

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format (text or json)")

	rootCmd.AddCommand(serve.NewServeCommand())
	rootCmd.AddCommand(report.NewReportCommand())
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("complyradar version %s (built %s)\n", version, buildTime) //nolint:forbidigo
		},
	})

	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}
