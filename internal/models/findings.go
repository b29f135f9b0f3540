// Package models contains data structures for ComplyRadar sensitive-data
// findings and the derived compliance report.
package models

import (
	"encoding/json"
	"fmt"
)

// Default values applied to missing or empty findings fields. The pipeline
// never fails on absent fields; it substitutes these and carries on.
const (
	DefaultSeverity    = "Unknown"
	DefaultCategory    = "Unknown"
	DefaultDescription = "No description available"
	DefaultUpdatedAt   = "Unknown"
)

// FindingsRecord is the raw export of a sensitive-data classification scan:
// an ordered sequence of scan findings. Only the first finding is consumed
// by the assessment pipeline; the classification service produces one finding
// per one-time job, so trailing elements are ignored rather than merged.
type FindingsRecord []ScanFinding

// ScanFinding is a single scan result as produced by the classification
// service. Every field is optional on the wire.
type ScanFinding struct {
	Severity              Severity              `json:"severity"`
	Category              string                `json:"category"`
	Description           string                `json:"description"`
	UpdatedAt             string                `json:"updatedAt"`
	ClassificationDetails ClassificationDetails `json:"classificationDetails"`
	Count                 int                   `json:"count"`
}

// Severity is the overall severity block of a scan finding.
type Severity struct {
	Description string `json:"description"`
}

// ClassificationDetails nests the classification result.
type ClassificationDetails struct {
	Result ClassificationResult `json:"result"`
}

// ClassificationResult holds the per-item sensitive data detections.
type ClassificationResult struct {
	SensitiveData []SensitiveDataItem `json:"sensitiveData"`
}

// SensitiveDataItem is one detected sensitive-data occurrence.
type SensitiveDataItem struct {
	Category string `json:"category"`
}

// ParseFindingsRecord decodes a raw findings document. The document must be
// a JSON array; a bare object is rejected to match the export format of the
// classification service.
func ParseFindingsRecord(data []byte) (FindingsRecord, error) {
	var record FindingsRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("decoding findings document: %w", err)
	}
	return record, nil
}

// SeverityDescription returns the finding's severity description, defaulted.
func (f *ScanFinding) SeverityDescription() string {
	return orDefault(f.Severity.Description, DefaultSeverity)
}

// CategoryOrDefault returns the finding's category, defaulted.
func (f *ScanFinding) CategoryOrDefault() string {
	return orDefault(f.Category, DefaultCategory)
}

// DescriptionOrDefault returns the finding's description, defaulted.
func (f *ScanFinding) DescriptionOrDefault() string {
	return orDefault(f.Description, DefaultDescription)
}

// UpdatedAtOrDefault returns the finding's update timestamp, defaulted. The
// value passes through verbatim; no reformatting.
func (f *ScanFinding) UpdatedAtOrDefault() string {
	return orDefault(f.UpdatedAt, DefaultUpdatedAt)
}

// SensitiveData returns the detected sensitive-data items in wire order.
func (f *ScanFinding) SensitiveData() []SensitiveDataItem {
	return f.ClassificationDetails.Result.SensitiveData
}

// CategoryOrDefault returns the item's category, defaulted.
func (i SensitiveDataItem) CategoryOrDefault() string {
	return orDefault(i.Category, DefaultCategory)
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
