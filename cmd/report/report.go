// Package report implements the report command generating a compliance
// report from a findings document.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/spf13/cobra"

	"github.com/complyradar/complyradar/internal/assess"
	"github.com/complyradar/complyradar/internal/config"
	"github.com/complyradar/complyradar/internal/models"
	"github.com/complyradar/complyradar/internal/pipeline"
	"github.com/complyradar/complyradar/internal/report"
	"github.com/complyradar/complyradar/internal/storage"
	"github.com/complyradar/complyradar/pkg/logger"
)

var (
	findingsFile string
	outputFile   string
	configFile   string
)

// NewReportCommand creates the report command.
func NewReportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate a compliance report from a findings document",
		Long: `Generate a paginated PDF compliance report.

With --findings, the report is built from a local findings JSON document and
written to a local file. Without it, the findings document is fetched from
the configured object store, the PDF is stored next to the other reports,
and a time-limited download link is printed.`,
		Example: `  # From a local findings export
  complyradar report --findings new.json --output compliance.pdf

  # Full pipeline against the object store
  complyradar report --config configs/production.yaml`,
		RunE: runReport,
	}

	cmd.Flags().StringVar(&findingsFile, "findings", "", "Local findings JSON document")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output PDF path (local mode)")
	cmd.Flags().StringVarP(&configFile, "config", "c", "", "Path to config file (store mode)")

	return cmd
}

func runReport(cmd *cobra.Command, _ []string) error {
	if findingsFile != "" {
		return runLocal()
	}
	if configFile == "" {
		return fmt.Errorf("either --findings or --config is required")
	}
	return runStore(cmd)
}

// runLocal builds the report from a local findings document.
func runLocal() error {
	log := logger.GetGlobalLogger()

	data, err := os.ReadFile(findingsFile) // #nosec G304 - operator-supplied path
	if err != nil {
		return fmt.Errorf("reading findings document: %w", err)
	}

	record, err := models.ParseFindingsRecord(data)
	if err != nil {
		return err
	}

	rep, err := assess.Assess(record)
	if err != nil {
		return err
	}

	pdf, err := report.NewGeneratorWithLogger(log).Generate(rep)
	if err != nil {
		return err
	}

	out := outputFile
	if out == "" {
		base := strings.TrimSuffix(filepath.Base(findingsFile), filepath.Ext(findingsFile))
		out = base + ".pdf"
	}
	if err := os.WriteFile(out, pdf, 0600); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	log.Info("Generated report", "file", out)
	printSummary(rep, "")
	return nil
}

// runStore runs the full pipeline against the configured object store.
func runStore(cmd *cobra.Command) error {
	log := logger.GetGlobalLogger()

	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	ctx := cmd.Context()
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWS.Region))
	if err != nil {
		return fmt.Errorf("loading AWS config: %w", err)
	}

	store := storage.NewS3StoreWithLogger(awsCfg, log)
	result, err := pipeline.NewWithLogger(store, cfg.Storage, log).Run(ctx)
	if err != nil {
		return err
	}

	log.Info("Generated report", "key", result.ReportKey)
	printSummary(result.Report, result.DownloadURL)
	return nil
}
