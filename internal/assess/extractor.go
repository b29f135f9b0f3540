package assess

import (
	"errors"

	"github.com/complyradar/complyradar/internal/models"
)

// ErrEmptyRecord reports a findings document that parsed correctly but
// contains no findings. Distinct from a missing document: the scan ran and
// exported nothing, so there is no report to build.
var ErrEmptyRecord = errors.New("findings record contains no findings")

// TierCounts is the three-bucket risk tally for one findings record. The
// severity seed and the per-item classifications both land here, so
// High+Medium+Low always equals one plus the number of sensitive-data items.
type TierCounts struct {
	High   int
	Medium int
	Low    int
}

// Add increments the bucket for the given tier.
func (c *TierCounts) Add(tier models.RiskTier) {
	switch tier {
	case models.TierHigh:
		c.High++
	case models.TierMedium:
		c.Medium++
	case models.TierLow:
		c.Low++
	}
}

// Total returns the sum across all buckets.
func (c TierCounts) Total() int {
	return c.High + c.Medium + c.Low
}

// Extraction is the structured output of walking one findings record.
type Extraction struct {
	RiskLevel     string
	Category      string
	Description   string
	LastUpdated   string
	Sensitivities []models.Sensitivity
	TierCounts    TierCounts
	FindingsCount int
}

// Extract walks a findings record and produces tier counts and classified
// sensitivities. Only the first finding is consumed; the classification
// service exports one finding per one-time job. If that ever changes
// upstream, trailing findings are silently ignored here.
//
// Missing fields degrade to documented defaults. The only failure mode is an
// empty record.
func Extract(record models.FindingsRecord) (*Extraction, error) {
	if len(record) == 0 {
		return nil, ErrEmptyRecord
	}

	finding := record[0]
	severity := finding.SeverityDescription()

	ex := &Extraction{
		RiskLevel:     severity,
		Category:      finding.CategoryOrDefault(),
		FindingsCount: finding.Count,
		Description:   finding.DescriptionOrDefault(),
		LastUpdated:   finding.UpdatedAtOrDefault(),
	}

	// The overall severity seeds exactly one bucket; comparison is
	// case-insensitive but RiskLevel keeps the original casing.
	ex.TierCounts.Add(models.TierFromSeverity(severity))

	items := finding.SensitiveData()
	ex.Sensitivities = make([]models.Sensitivity, 0, len(items))
	for _, item := range items {
		category := item.CategoryOrDefault()
		tier, action := Classify(category)
		ex.TierCounts.Add(tier)
		ex.Sensitivities = append(ex.Sensitivities, models.Sensitivity{
			Type:       category,
			Visibility: models.VisibilityPartial,
			Risk:       tier,
			Action:     action,
		})
	}

	return ex, nil
}
