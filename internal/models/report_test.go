package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComplianceReportFieldOrder(t *testing.T) {
	rep := ComplianceReport{
		RiskLevel:          "High",
		Category:           "PII",
		FindingsCount:      5,
		Description:        "desc",
		LastUpdated:        "2026-01-15",
		HighRisk:           2,
		MediumRisk:         1,
		LowRisk:            0,
		Sensitivities:      []Sensitivity{{Type: "SSN", Risk: TierHigh}},
		DataProtection:     100,
		AccessControl:      80,
		SecurityMonitoring: 70,
		Privacy:            85,
		Encryption:         95,
	}

	fields := rep.Fields()

	// The label order is a rendering contract.
	wantLabels := []string{
		"Risk Level", "Category", "Findings Count", "Description", "Last Updated",
		"High Risk", "Medium Risk", "Low Risk", "Sensitivities",
		"Data Protection", "Access Control", "Security Monitoring", "Privacy", "Encryption",
	}
	require.Len(t, fields, len(wantLabels))
	for i, want := range wantLabels {
		assert.Equal(t, want, fields[i].Label, "field %d", i)
	}
}

func TestComplianceReportFieldValues(t *testing.T) {
	rep := ComplianceReport{
		RiskLevel:     "High",
		FindingsCount: 5,
		HighRisk:      2,
		Sensitivities: []Sensitivity{{Type: "SSN"}},
	}

	fields := rep.Fields()
	byLabel := make(map[string]Field, len(fields))
	for _, f := range fields {
		byLabel[f.Label] = f
	}

	assert.Equal(t, "High", byLabel["Risk Level"].Value)
	assert.Equal(t, "5", byLabel["Findings Count"].Value)
	assert.Equal(t, "2", byLabel["High Risk"].Value)

	sens := byLabel["Sensitivities"]
	assert.Empty(t, sens.Value)
	require.Len(t, sens.Sensitivities, 1)
	assert.Equal(t, "SSN", sens.Sensitivities[0].Type)
}

func TestComplianceReportFieldsNilSensitivities(t *testing.T) {
	fields := ComplianceReport{}.Fields()
	for _, f := range fields {
		if f.Label == "Sensitivities" {
			assert.NotNil(t, f.Sensitivities, "sensitivities field always carries a slice")
			assert.Empty(t, f.Sensitivities)
			return
		}
	}
	t.Fatal("Sensitivities field missing")
}
