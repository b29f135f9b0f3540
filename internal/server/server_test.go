package server

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/complyradar/complyradar/internal/assess"
	"github.com/complyradar/complyradar/internal/config"
	"github.com/complyradar/complyradar/internal/models"
	"github.com/complyradar/complyradar/internal/pipeline"
	"github.com/complyradar/complyradar/internal/storage"
	"github.com/complyradar/complyradar/pkg/logger"
)

type stubTrigger struct {
	bucket string
	key    string
	err    error
}

func (s *stubTrigger) StartScan(_ context.Context, bucket, key string) (string, error) {
	s.bucket = bucket
	s.key = key
	if s.err != nil {
		return "", s.err
	}
	return "job-123", nil
}

type stubReporter struct {
	result *pipeline.Result
	err    error
}

func (s *stubReporter) Run(_ context.Context) (*pipeline.Result, error) {
	return s.result, s.err
}

func testServerConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Storage.UploadBucket = "uploads"
	cfg.Storage.FindingsBucket = "findings"
	cfg.Storage.ReportBucket = "reports"
	return cfg
}

func newTestServer(t *testing.T, trigger ScanTrigger, reporter Reporter) (*Server, *storage.MemoryStore) {
	t.Helper()
	store := storage.NewMemoryStore()
	srv := NewWithLogger(store, trigger, reporter, testServerConfig(), logger.NewMockLogger())
	return srv, store
}

func multipartBody(t *testing.T, fieldName, filename, content string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(fieldName, filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestHandleIndex(t *testing.T) {
	srv, _ := newTestServer(t, &stubTrigger{}, &stubReporter{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "form")
}

func TestHandleUpload(t *testing.T) {
	trigger := &stubTrigger{}
	srv, store := newTestServer(t, trigger, &stubReporter{})

	body, contentType := multipartBody(t, "file", "customers.csv", "name,email\nalice,a@example.com\n")
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/buffer", rec.Header().Get("Location"))

	stored, err := store.Get(context.Background(), "uploads", "customers.csv")
	require.NoError(t, err)
	assert.Contains(t, string(stored), "alice")

	assert.Equal(t, "uploads", trigger.bucket)
	assert.Equal(t, "customers.csv", trigger.key)
}

func TestHandleUploadRejectsNonCSV(t *testing.T) {
	srv, _ := newTestServer(t, &stubTrigger{}, &stubReporter{})

	body, contentType := multipartBody(t, "file", "data.txt", "not a csv")
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Only CSV files are allowed")
}

func TestHandleUploadMissingFile(t *testing.T) {
	srv, _ := newTestServer(t, &stubTrigger{}, &stubReporter{})

	body, contentType := multipartBody(t, "other", "data.csv", "x")
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "No file uploaded")
}

func TestHandleUploadTriggerFailure(t *testing.T) {
	trigger := &stubTrigger{err: errors.New("macie unavailable")}
	srv, _ := newTestServer(t, trigger, &stubReporter{})

	body, contentType := multipartBody(t, "file", "customers.csv", "a,b\n")
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "Failed to start classification scan")
}

func TestHandleBuffer(t *testing.T) {
	srv, _ := newTestServer(t, &stubTrigger{}, &stubReporter{})

	req := httptest.NewRequest(http.MethodGet, "/buffer", nil)
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/result")
}

func TestHandleResult(t *testing.T) {
	reporter := &stubReporter{
		result: &pipeline.Result{
			Report: models.ComplianceReport{
				RiskLevel:     "High",
				Category:      "CLASSIFICATION",
				Description:   "Sensitive data detected",
				LastUpdated:   "2024-03-01T12:00:00Z",
				FindingsCount: 3,
				HighRisk:      2,
				MediumRisk:    1,
				Sensitivities: []models.Sensitivity{
					{
						Type:       "FINANCIAL",
						Visibility: models.VisibilityPartial,
						Risk:       models.TierHigh,
						Action:     "Immediately protect FINANCIAL information",
					},
				},
				DataProtection:     100,
				AccessControl:      80,
				SecurityMonitoring: 70,
				Privacy:            85,
				Encryption:         95,
			},
			ReportKey:   "scan.pdf",
			DownloadURL: "https://reports.example/scan.pdf",
		},
	}
	srv, _ := newTestServer(t, &stubTrigger{}, reporter)

	req := httptest.NewRequest(http.MethodGet, "/result", nil)
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	page := rec.Body.String()
	assert.Contains(t, page, "Risk Level")
	assert.Contains(t, page, "High")
	assert.Contains(t, page, "FINANCIAL")
	assert.Contains(t, page, "https://reports.example/scan.pdf")
}

func TestHandleResultNoFindings(t *testing.T) {
	reporter := &stubReporter{err: storage.ErrNoFindingsDocument}
	srv, _ := newTestServer(t, &stubTrigger{}, reporter)

	req := httptest.NewRequest(http.MethodGet, "/result", nil)
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "No compliance report found")
}

func TestHandleResultEmptyRecord(t *testing.T) {
	reporter := &stubReporter{err: assess.ErrEmptyRecord}
	srv, _ := newTestServer(t, &stubTrigger{}, reporter)

	req := httptest.NewRequest(http.MethodGet, "/result", nil)
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "No report available")
}

func TestHandleResultInternalError(t *testing.T) {
	reporter := &stubReporter{err: errors.New("store unreachable")}
	srv, _ := newTestServer(t, &stubTrigger{}, reporter)

	req := httptest.NewRequest(http.MethodGet, "/result", nil)
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Error processing findings document")
}
