package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/complyradar/complyradar/internal/models"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	labelStyle = lipgloss.NewStyle().Width(20)
	highStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	medStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	lowStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	dimStyle   = lipgloss.NewStyle().Faint(true)
)

// printSummary renders a terminal summary of the assessment. The PDF is the
// report of record; this is operator feedback only.
func printSummary(rep models.ComplianceReport, downloadURL string) {
	titleCase := cases.Title(language.English)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Compliance Assessment") + "\n\n")

	row := func(label, value string) {
		b.WriteString(labelStyle.Render(label) + value + "\n")
	}

	row("Risk Level", tierStyle(models.TierFromSeverity(rep.RiskLevel)).Render(titleCase.String(rep.RiskLevel)))
	row("Category", rep.Category)
	row("Findings Count", fmt.Sprintf("%d", rep.FindingsCount))
	row("Last Updated", rep.LastUpdated)
	b.WriteString("\n")

	row("High Risk", highStyle.Render(fmt.Sprintf("%d", rep.HighRisk)))
	row("Medium Risk", medStyle.Render(fmt.Sprintf("%d", rep.MediumRisk)))
	row("Low Risk", lowStyle.Render(fmt.Sprintf("%d", rep.LowRisk)))
	b.WriteString("\n")

	row("Data Protection", score(rep.DataProtection))
	row("Access Control", score(rep.AccessControl))
	row("Security Monitoring", score(rep.SecurityMonitoring))
	row("Privacy", score(rep.Privacy))
	row("Encryption", score(rep.Encryption))

	if len(rep.Sensitivities) > 0 {
		b.WriteString("\n" + titleStyle.Render("Sensitivities") + "\n")
		for _, s := range rep.Sensitivities {
			b.WriteString(fmt.Sprintf("  %s %s %s\n",
				tierStyle(s.Risk).Render(fmt.Sprintf("[%s]", s.Risk)),
				s.Type,
				dimStyle.Render(s.Action)))
		}
	}

	if downloadURL != "" {
		b.WriteString("\n" + dimStyle.Render("Download: "+downloadURL) + "\n")
	}

	fmt.Print(b.String()) //nolint:forbidigo
}

func tierStyle(tier models.RiskTier) lipgloss.Style {
	switch tier {
	case models.TierHigh:
		return highStyle
	case models.TierMedium:
		return medStyle
	default:
		return lowStyle
	}
}

func score(n int) string {
	return fmt.Sprintf("%3d / 100", n)
}
