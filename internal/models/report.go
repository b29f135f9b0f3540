package models

import "strconv"

// ComplianceReport is the assembled risk assessment for one findings record.
// It is constructed once per pipeline run and never mutated afterwards;
// copies are passed by value to the renderer and the presentation layer.
type ComplianceReport struct {
	RiskLevel     string
	Category      string
	Description   string
	LastUpdated   string
	Sensitivities []Sensitivity
	FindingsCount int

	HighRisk   int
	MediumRisk int
	LowRisk    int

	DataProtection     int
	AccessControl      int
	SecurityMonitoring int
	Privacy            int
	Encryption         int
}

// Field is one labeled report entry in render order. Exactly one field
// carries Sensitivities instead of a scalar value; for that field Value is
// empty and Sensitivities is non-nil (possibly zero length).
type Field struct {
	Label         string
	Value         string
	Sensitivities []Sensitivity
}

// Fields returns the report's entries in the fixed order that the paginated
// renderer and any tabular presentation depend on. The order is a contract:
// identity fields, tier distribution, sensitivities, then composite metrics.
func (r ComplianceReport) Fields() []Field {
	sensitivities := r.Sensitivities
	if sensitivities == nil {
		sensitivities = []Sensitivity{}
	}
	return []Field{
		{Label: "Risk Level", Value: r.RiskLevel},
		{Label: "Category", Value: r.Category},
		{Label: "Findings Count", Value: strconv.Itoa(r.FindingsCount)},
		{Label: "Description", Value: r.Description},
		{Label: "Last Updated", Value: r.LastUpdated},
		{Label: "High Risk", Value: strconv.Itoa(r.HighRisk)},
		{Label: "Medium Risk", Value: strconv.Itoa(r.MediumRisk)},
		{Label: "Low Risk", Value: strconv.Itoa(r.LowRisk)},
		{Label: "Sensitivities", Sensitivities: sensitivities},
		{Label: "Data Protection", Value: strconv.Itoa(r.DataProtection)},
		{Label: "Access Control", Value: strconv.Itoa(r.AccessControl)},
		{Label: "Security Monitoring", Value: strconv.Itoa(r.SecurityMonitoring)},
		{Label: "Privacy", Value: strconv.Itoa(r.Privacy)},
		{Label: "Encryption", Value: strconv.Itoa(r.Encryption)},
	}
}
