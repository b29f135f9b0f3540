package models

import "strings"

// RiskTier is the coarse risk classification used for both per-item
// sensitivities and report-level summarization.
type RiskTier string

// Risk tiers, from most to least severe. The string values are display
// values and appear verbatim in rendered reports.
const (
	TierHigh   RiskTier = "High"
	TierMedium RiskTier = "Medium"
	TierLow    RiskTier = "Low"
)

// TierFromSeverity maps an overall severity description to the tier bucket
// it seeds. Comparison is case-insensitive; anything unrecognized, including
// the "Unknown" default, lands in Low.
func TierFromSeverity(severity string) RiskTier {
	switch strings.ToLower(severity) {
	case "high":
		return TierHigh
	case "medium":
		return TierMedium
	default:
		return TierLow
	}
}

// VisibilityPartial is the visibility marker carried by every sensitivity.
// The classification service reports detections on masked samples, so
// detected values are never fully exposed.
const VisibilityPartial = "Partially Visible"

// Sensitivity is one classified sensitive-data item. Immutable once built.
type Sensitivity struct {
	Type       string   `json:"type"`
	Visibility string   `json:"visibility"`
	Risk       RiskTier `json:"risk"`
	Action     string   `json:"action"`
}

// String renders the sensitivity as a flat key/value line for the paginated
// report and logs.
func (s Sensitivity) String() string {
	var b strings.Builder
	b.WriteString("type: " + s.Type)
	b.WriteString(" | visibility: " + s.Visibility)
	b.WriteString(" | risk: " + string(s.Risk))
	b.WriteString(" | action: " + s.Action)
	return b.String()
}
