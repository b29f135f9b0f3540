// Package report renders a compliance report model into a paginated PDF
// document with a fixed, reproducible layout.
package report

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	gofpdf "github.com/go-pdf/fpdf"

	"github.com/complyradar/complyradar/internal/models"
	"github.com/complyradar/complyradar/pkg/logger"
)

// Layout constants, in points on a letter page (612x792). One field per
// line from a fixed left margin; sensitivity entries are indented and
// word-wrapped. When the cursor passes the bottom margin the renderer breaks
// to a new page rather than truncating.
const (
	pageLeft      = 100.0
	pageIndent    = 120.0
	pageRight     = 72.0
	titleY        = 42.0
	separatorY    = 62.0
	bodyTopY      = 92.0
	lineHeight    = 20.0
	bodyBottomY   = 720.0
	reportTitle   = "Compliance Report"
	separatorRune = "-"
)

// pinnedDate keeps document metadata constant so identical reports produce
// byte-identical PDFs.
var pinnedDate = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// Generator renders compliance reports as PDF bytes.
type Generator struct {
	logger logger.Logger
}

// NewGenerator creates a PDF generator with the global logger.
func NewGenerator() *Generator {
	return NewGeneratorWithLogger(logger.GetGlobalLogger())
}

// NewGeneratorWithLogger creates a PDF generator with a custom logger.
func NewGeneratorWithLogger(log logger.Logger) *Generator {
	return &Generator{logger: log}
}

// Generate renders the report into PDF bytes. It never fails on content
// size; oversized reports paginate.
func (g *Generator) Generate(rep models.ComplianceReport) ([]byte, error) {
	doc := g.build(rep)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing report document: %w", err)
	}

	g.logger.Debug("Rendered compliance report",
		"pages", doc.PageCount(),
		"sensitivities", len(rep.Sensitivities),
		"bytes", buf.Len())
	return buf.Bytes(), nil
}

// build lays the report out page by page. Split from Generate so tests can
// inspect pagination without decoding PDF bytes.
func (g *Generator) build(rep models.ComplianceReport) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "pt", "Letter", "")
	pdf.SetCreationDate(pinnedDate)
	pdf.SetModificationDate(pinnedDate)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "", 12)

	pdf.Text(pageLeft, titleY, reportTitle)
	pdf.Text(pageLeft, separatorY, strings.Repeat(separatorRune, 50))

	cursor := bodyTopY
	line := func(prefix, text string, indent bool) {
		if cursor > bodyBottomY {
			pdf.AddPage()
			cursor = bodyTopY
		}
		left := pageLeft
		if indent {
			left = pageIndent
		}
		pdf.Text(left, cursor, prefix+text)
		cursor += lineHeight
	}

	pageWidth, _ := pdf.GetPageSize()
	wrapWidth := pageWidth - pageIndent - pageRight

	for _, field := range rep.Fields() {
		if field.Sensitivities != nil {
			line("", field.Label+":", false)
			for _, s := range field.Sensitivities {
				for i, chunk := range pdf.SplitText(s.String(), wrapWidth) {
					prefix := "- "
					if i > 0 {
						prefix = "  "
					}
					line(prefix, chunk, true)
				}
			}
			continue
		}
		line("", fmt.Sprintf("%s: %s", field.Label, field.Value), false)
	}

	return pdf
}
