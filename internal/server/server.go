// Package server provides the HTTP surface around the findings-to-report
// pipeline: CSV upload, classification triggering, and report retrieval.
package server

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/complyradar/complyradar/internal/assess"
	"github.com/complyradar/complyradar/internal/config"
	"github.com/complyradar/complyradar/internal/pipeline"
	"github.com/complyradar/complyradar/internal/storage"
	"github.com/complyradar/complyradar/pkg/logger"
)

//go:embed templates/*.html
var templateFS embed.FS

// ScanTrigger starts a classification job for an uploaded object.
type ScanTrigger interface {
	StartScan(ctx context.Context, bucket, key string) (string, error)
}

// Reporter runs the findings-to-report pipeline.
type Reporter interface {
	Run(ctx context.Context) (*pipeline.Result, error)
}

// Server handles the upload/buffer/result flow.
type Server struct {
	store    storage.ObjectStore
	trigger  ScanTrigger
	reporter Reporter
	cfg      *config.Config
	logger   logger.Logger
	tmpl     *template.Template
}

// New creates a server with the global logger.
func New(store storage.ObjectStore, trigger ScanTrigger, reporter Reporter, cfg *config.Config) *Server {
	return NewWithLogger(store, trigger, reporter, cfg, logger.GetGlobalLogger())
}

// NewWithLogger creates a server with a custom logger.
func NewWithLogger(store storage.ObjectStore, trigger ScanTrigger, reporter Reporter, cfg *config.Config, log logger.Logger) *Server {
	return &Server{
		store:    store,
		trigger:  trigger,
		reporter: reporter,
		cfg:      cfg,
		logger:   log,
		tmpl:     template.Must(template.ParseFS(templateFS, "templates/*.html")),
	}
}

// Routes returns the chi router for the service.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", s.handleIndex)
	r.Post("/upload", s.handleUpload)
	r.Get("/buffer", s.handleBuffer)
	r.Get("/result", s.handleResult)
	return r
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	s.render(w, "upload.html", nil)
}

// handleUpload accepts a CSV, stores it in the upload bucket, and triggers
// a classification job for the bucket. Only the file extension is checked;
// content validation belongs to the classification service.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "No file uploaded", http.StatusBadRequest)
		return
	}
	defer func() {
		_ = file.Close()
	}()

	if header.Filename == "" {
		http.Error(w, "No selected file", http.StatusBadRequest)
		return
	}
	if !strings.EqualFold(filepath.Ext(header.Filename), ".csv") {
		http.Error(w, "Only CSV files are allowed", http.StatusBadRequest)
		return
	}

	bucket := s.cfg.Storage.UploadBucket
	if err := s.store.Put(r.Context(), bucket, header.Filename, file, "text/csv"); err != nil {
		s.logger.Error("Upload failed", "file", header.Filename, "error", err)
		http.Error(w, "Upload failed", http.StatusBadGateway)
		return
	}
	s.logger.Info("Stored upload", "bucket", bucket, "file", header.Filename)

	if _, err := s.trigger.StartScan(r.Context(), bucket, header.Filename); err != nil {
		s.logger.Error("Classification trigger failed", "file", header.Filename, "error", err)
		http.Error(w, "Failed to start classification scan", http.StatusBadGateway)
		return
	}

	http.Redirect(w, r, "/buffer", http.StatusSeeOther)
}

func (s *Server) handleBuffer(w http.ResponseWriter, _ *http.Request) {
	s.render(w, "buffer.html", map[string]string{"ResultURL": "/result"})
}

// handleResult runs the pipeline and shows the assessment with a download
// link. Structural pipeline errors translate to user-facing responses here;
// the pipeline itself never retries.
func (s *Server) handleResult(w http.ResponseWriter, r *http.Request) {
	result, err := s.reporter.Run(r.Context())
	switch {
	case err == nil:
	case errors.Is(err, storage.ErrNoFindingsDocument):
		http.Error(w, "No compliance report found", http.StatusNotFound)
		return
	case errors.Is(err, assess.ErrEmptyRecord):
		http.Error(w, "No report available", http.StatusNotFound)
		return
	default:
		s.logger.Error("Report generation failed", "error", err)
		http.Error(w, "Error processing findings document", http.StatusInternalServerError)
		return
	}

	s.render(w, "result.html", map[string]any{
		"Fields":  result.Report.Fields(),
		"FileURL": result.DownloadURL,
	})
}

func (s *Server) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.ExecuteTemplate(w, name, data); err != nil {
		s.logger.Error("Template render failed", "template", name, "error", err)
	}
}
