// Package pipeline orchestrates one findings-to-report run: fetch the
// findings document, assess it, render the PDF, persist it, and issue a
// download link. The pipeline is stateless and safe for concurrent runs;
// every run builds its own report.
package pipeline

import (
	"bytes"
	"context"
	"path"
	"strings"

	"github.com/complyradar/complyradar/internal/assess"
	"github.com/complyradar/complyradar/internal/config"
	"github.com/complyradar/complyradar/internal/models"
	"github.com/complyradar/complyradar/internal/report"
	"github.com/complyradar/complyradar/internal/storage"
	"github.com/complyradar/complyradar/pkg/logger"
)

// Pipeline runs findings-to-report conversions against an object store.
type Pipeline struct {
	store     storage.ObjectStore
	generator *report.Generator
	cfg       config.StorageConfig
	logger    logger.Logger
}

// Result is the outcome of one pipeline run.
type Result struct {
	Report      models.ComplianceReport
	ReportKey   string
	DownloadURL string
}

// New creates a pipeline with the global logger.
func New(store storage.ObjectStore, cfg config.StorageConfig) *Pipeline {
	return NewWithLogger(store, cfg, logger.GetGlobalLogger())
}

// NewWithLogger creates a pipeline with a custom logger.
func NewWithLogger(store storage.ObjectStore, cfg config.StorageConfig, log logger.Logger) *Pipeline {
	return &Pipeline{
		store:     store,
		generator: report.NewGeneratorWithLogger(log),
		cfg:       cfg,
		logger:    log,
	}
}

// Run executes one findings-to-report conversion. Structural errors
// propagate typed: storage.ErrNoFindingsDocument when no findings document
// exists, assess.ErrEmptyRecord when the document holds no findings. The
// pipeline never retries; translation into user-facing responses is the
// caller's job.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	data, key, err := storage.FetchFindingsDocument(ctx, p.store, p.cfg.FindingsBucket, p.cfg.FindingsPrefix)
	if err != nil {
		return nil, stageErr(StageFetch, err)
	}
	p.logger.Debug("Fetched findings document", "key", key, "bytes", len(data))

	record, err := models.ParseFindingsRecord(data)
	if err != nil {
		return nil, stageErr(StageParse, err)
	}

	rep, err := assess.Assess(record)
	if err != nil {
		return nil, stageErr(StageAssess, err)
	}

	pdf, err := p.generator.Generate(rep)
	if err != nil {
		return nil, stageErr(StageRender, err)
	}

	reportKey := reportKeyFor(key)
	if err := p.store.Put(ctx, p.cfg.ReportBucket, reportKey, bytes.NewReader(pdf), "application/pdf"); err != nil {
		return nil, stageErr(StageStore, err)
	}

	url, err := p.store.PresignGet(ctx, p.cfg.ReportBucket, reportKey, p.cfg.PresignExpiry())
	if err != nil {
		return nil, stageErr(StageStore, err)
	}

	p.logger.Info("Generated compliance report",
		"findings_key", key,
		"report_key", reportKey,
		"high", rep.HighRisk, "medium", rep.MediumRisk, "low", rep.LowRisk)

	return &Result{
		Report:      rep,
		ReportKey:   reportKey,
		DownloadURL: url,
	}, nil
}

// reportKeyFor derives the PDF key from the findings document key: the base
// name with its .json suffix swapped for .pdf.
func reportKeyFor(findingsKey string) string {
	base := path.Base(findingsKey)
	if strings.HasSuffix(base, ".json") {
		base = strings.TrimSuffix(base, ".json") + ".pdf"
	} else {
		base += ".pdf"
	}
	return base
}
