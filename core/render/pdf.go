package render

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/guestlens/guestlens/core/report"
)

// DefaultPDFTitle is used when the caller passes an empty title.
const DefaultPDFTitle = "Guest Review Analysis Report"

// unicodeFontPaths are tried in order for a font with Cyrillic coverage.
// When none exists the document falls back to the built-in Helvetica, which
// covers Latin-1 only.
var unicodeFontPaths = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/TTF/DejaVuSans.ttf",
	"/Library/Fonts/Arial.ttf",
	"C:/Windows/Fonts/arial.ttf",
}

// pdfBuilder wraps fpdf with the document's font and layout state.
type pdfBuilder struct {
	doc      *fpdf.Fpdf
	fontName string
}

// PDF renders the report as an A4 PDF and returns the document bytes.
func PDF(r report.Report, title string) ([]byte, error) {
	if title == "" {
		title = DefaultPDFTitle
	}

	b := newPDFBuilder()
	b.title(title)
	b.body(fmt.Sprintf("Generated: %s UTC", time.Now().UTC().Format("02.01.2006 15:04")))
	b.doc.Ln(6)

	b.textSection("Executive Summary", r.ExecutiveSummary())
	b.quotesSection(r.Quotes())
	b.listSection("Strengths", r.Positives())
	b.listSection("Weaknesses", r.Negatives())
	b.listSection("Risk Flags", r.RiskFlags())
	b.listSection("Action Plan", r.ActionPlan())
	b.listSection("Best Practices", r.BestPractices())

	if themes := r.KeyThemesList(); len(themes) > 0 {
		b.listSection("Key Themes", themes)
	}

	if warning, ok := r.Warning(); ok {
		b.textSection("Warning", warning)
	}

	if raw, ok := r.RawOutput(); ok {
		b.textSection("Unprocessed Model Output", raw)
	}

	var buf bytes.Buffer
	if err := b.doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func newPDFBuilder() *pdfBuilder {
	for _, path := range unicodeFontPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		doc := newDocument()
		doc.AddUTF8Font("unicode", "", path)
		// fpdf errors are sticky: a failed font load poisons the document,
		// so fall through to the Helvetica build instead.
		if doc.Error() == nil {
			doc.AddPage()
			return &pdfBuilder{doc: doc, fontName: "unicode"}
		}
	}

	doc := newDocument()
	doc.AddPage()
	return &pdfBuilder{doc: doc, fontName: "Helvetica"}
}

func newDocument() *fpdf.Fpdf {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetMargins(20, 20, 20)
	doc.SetAutoPageBreak(true, 20)
	return doc
}

func (b *pdfBuilder) title(text string) {
	b.doc.SetFont(b.fontName, "", 16)
	b.doc.MultiCell(0, 8, b.encode(text), "", "L", false)
	b.doc.Ln(2)
}

func (b *pdfBuilder) heading(text string) {
	b.doc.SetFont(b.fontName, "", 12)
	b.doc.SetTextColor(44, 82, 130)
	b.doc.MultiCell(0, 6, b.encode(text), "", "L", false)
	b.doc.SetTextColor(0, 0, 0)
	b.doc.Ln(1)
}

func (b *pdfBuilder) body(text string) {
	b.doc.SetFont(b.fontName, "", 10)
	b.doc.MultiCell(0, 5, b.encode(text), "", "L", false)
}

func (b *pdfBuilder) quote(text string) {
	b.doc.SetFont(b.fontName, "", 10)
	b.doc.SetTextColor(74, 85, 104)
	b.doc.SetLeftMargin(28)
	b.doc.MultiCell(0, 5, b.encode(`"`+text+`"`), "", "L", false)
	b.doc.SetLeftMargin(20)
	b.doc.SetTextColor(0, 0, 0)
}

func (b *pdfBuilder) textSection(header, text string) {
	b.heading(header)
	if text == "" {
		text = "-"
	}
	b.body(text)
	b.doc.Ln(4)
}

func (b *pdfBuilder) listSection(header string, items []string) {
	b.heading(header)
	if len(items) == 0 {
		b.body("-")
	}
	for _, item := range items {
		b.body("* " + item)
	}
	b.doc.Ln(4)
}

func (b *pdfBuilder) quotesSection(quotes report.Quotes) {
	if quotes.WowEffect == "" && quotes.TypicalPositive == "" && len(quotes.TypicalNegatives) == 0 {
		return
	}

	b.heading("Example Quotes")
	if quotes.WowEffect != "" {
		b.body("Wow effect:")
		b.quote(quotes.WowEffect)
	}
	if quotes.TypicalPositive != "" {
		b.body("Typical positive:")
		b.quote(quotes.TypicalPositive)
	}
	if len(quotes.TypicalNegatives) > 0 {
		b.body("Typical negatives:")
		for _, neg := range quotes.TypicalNegatives {
			b.quote(neg)
		}
	}
	b.doc.Ln(4)
}

// encode maps text to the active font's encoding. The UTF-8 font takes text
// as is; the Helvetica fallback needs a cp1252 translation.
func (b *pdfBuilder) encode(text string) string {
	if b.fontName == "unicode" {
		return text
	}
	translate := b.doc.UnicodeTranslatorFromDescriptor("")
	return translate(text)
}
