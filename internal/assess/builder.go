package assess

import "github.com/complyradar/complyradar/internal/models"

// BuildReport assembles an extraction and its synthesized metrics into the
// compliance report model. Pure assembly: the field order contract lives on
// models.ComplianceReport.Fields.
func BuildReport(ex *Extraction, m Metrics) models.ComplianceReport {
	return models.ComplianceReport{
		RiskLevel:     ex.RiskLevel,
		Category:      ex.Category,
		FindingsCount: ex.FindingsCount,
		Description:   ex.Description,
		LastUpdated:   ex.LastUpdated,

		HighRisk:   ex.TierCounts.High,
		MediumRisk: ex.TierCounts.Medium,
		LowRisk:    ex.TierCounts.Low,

		Sensitivities: ex.Sensitivities,

		DataProtection:     m.DataProtection,
		AccessControl:      m.AccessControl,
		SecurityMonitoring: m.SecurityMonitoring,
		Privacy:            m.Privacy,
		Encryption:         m.Encryption,
	}
}

// Assess runs the full in-memory pipeline for one findings record:
// extraction, metric synthesis, and report assembly.
func Assess(record models.FindingsRecord) (models.ComplianceReport, error) {
	ex, err := Extract(record)
	if err != nil {
		return models.ComplianceReport{}, err
	}
	metrics := Synthesize(ex.TierCounts, len(ex.Sensitivities))
	return BuildReport(ex, metrics), nil
}
