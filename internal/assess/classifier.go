// Package assess implements the findings-to-report assessment pipeline:
// risk classification of sensitive-data categories, extraction of a findings
// record into tier counts and sensitivities, composite metric synthesis, and
// assembly of the compliance report model.
package assess

import (
	"fmt"

	"github.com/complyradar/complyradar/internal/models"
)

// Category sets driving risk classification. Matching is case-sensitive and
// exact; the classification service emits these identifiers verbatim.
var (
	highRiskCategories = map[string]struct{}{
		"FINANCIAL":       {},
		"PERSONAL_HEALTH": {},
		"SSN":             {},
	}
	mediumRiskCategories = map[string]struct{}{
		"EMAIL":   {},
		"PHONE":   {},
		"ADDRESS": {},
	}
)

// actionLowRisk is the prescribed action for everything outside the known
// category sets.
const actionLowRisk = "Maintain current data protection measures"

// Classify maps a sensitive-data category to its risk tier and prescribed
// action. It is total: unmapped categories fall through to Low, never error.
func Classify(category string) (models.RiskTier, string) {
	if _, ok := highRiskCategories[category]; ok {
		return models.TierHigh, fmt.Sprintf("Immediately protect %s information", category)
	}
	if _, ok := mediumRiskCategories[category]; ok {
		return models.TierMedium, fmt.Sprintf("Review and secure %s data handling", category)
	}
	return models.TierLow, actionLowRisk
}
