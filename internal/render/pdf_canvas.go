package render

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"unicode"

	"codeberg.org/go-fonts/liberation/liberationsansbold"
	"codeberg.org/go-fonts/liberation/liberationsansregular"
	"codeberg.org/go-pdf/fpdf"

	"github.com/HowardChu-bme/Taxi-Receipt/internal/expense"
)

const (
	unicodeFamily = "LiberationSans"
	builtinFamily = "Helvetica"

	pageMargin = 15.0
	labelWidth = 55.0
	lineHeight = 6.0
)

// CanvasOptions tunes the direct-drawing PDF path. FontPath optionally
// points at a TTF that replaces the embedded Liberation Sans.
type CanvasOptions struct {
	FontPath string
}

// CanvasPDF draws the record section by section onto an A4 page: bold label
// cell, wrapped value cell, automatic page breaks. Output bytes are stable
// for a given record because the document dates are pinned to the
// submission date.
func CanvasPDF(r expense.Record, opts CanvasOptions) (Result, error) {
	doc := BuildDocument(r)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCreationDate(r.SubmissionDate)
	pdf.SetModificationDate(r.SubmissionDate)
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)

	family, warns := loadFont(pdf, opts.FontPath)
	if family == builtinFamily && mojibakeRisk(doc) {
		warns = append(warns, "document contains non-ASCII text; the built-in font cannot render it faithfully")
	}

	pdf.AddPage()
	pageW, _ := pdf.GetPageSize()
	usable := pageW - 2*pageMargin

	pdf.SetFont(family, "B", 16)
	pdf.CellFormat(usable, 9, doc.Title, "", 1, "C", false, 0, "")
	pdf.SetFont(family, "", 10)
	pdf.CellFormat(usable, 6, doc.Subtitle, "", 1, "C", false, 0, "")
	pdf.Ln(3)

	for _, sec := range doc.Sections {
		pdf.SetFont(family, "B", 12)
		pdf.CellFormat(usable, 8, sec.Title, "B", 1, "L", false, 0, "")
		pdf.Ln(1)
		if len(sec.Badges) > 0 {
			pdf.SetFont(family, "", 10)
			pdf.MultiCell(usable, lineHeight, "[ "+strings.Join(sec.Badges, " ]  [ ")+" ]", "", "L", false)
		}
		for _, f := range sec.Fields {
			pdf.SetFont(family, "B", 10)
			pdf.CellFormat(labelWidth, lineHeight, f.Label+":", "", 0, "L", false, 0, "")
			pdf.SetFont(family, "", 10)
			// MultiCell wraps long values and keeps embedded line breaks.
			pdf.MultiCell(usable-labelWidth, lineHeight, f.Value, "", "L", false)
		}
		pdf.Ln(2)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return Result{Warnings: warns}, fmt.Errorf("write pdf: %w", err)
	}
	return Result{PDF: buf.Bytes(), Warnings: warns}, nil
}

// loadFont registers a Unicode-capable font and reports the family to draw
// with. A broken override falls back to the embedded Liberation Sans; a
// rejected embedded font falls back to the ASCII-only core font.
func loadFont(pdf *fpdf.Fpdf, override string) (string, []string) {
	var warns []string
	regular := liberationsansregular.TTF
	bold := liberationsansbold.TTF
	if override != "" {
		b, err := os.ReadFile(override)
		if err != nil {
			warns = append(warns, fmt.Sprintf("font %s unreadable, using embedded font: %v", override, err))
		} else if !fontUsable(b, b) {
			warns = append(warns, fmt.Sprintf("font %s rejected, using embedded font", override))
		} else {
			regular, bold = b, b
		}
	}
	if !fontUsable(regular, bold) {
		warns = append(warns, "embedded font rejected, falling back to "+builtinFamily)
		return builtinFamily, warns
	}
	pdf.AddUTF8FontFromBytes(unicodeFamily, "", regular)
	pdf.AddUTF8FontFromBytes(unicodeFamily, "B", bold)
	return unicodeFamily, warns
}

// fontUsable probes registration on a scratch document so a bad TTF never
// taints the document being drawn.
func fontUsable(regular, bold []byte) bool {
	probe := fpdf.New("P", "mm", "A4", "")
	probe.AddUTF8FontFromBytes(unicodeFamily, "", regular)
	probe.AddUTF8FontFromBytes(unicodeFamily, "B", bold)
	return !probe.Err()
}

func mojibakeRisk(doc Document) bool {
	if hasNonASCII(doc.Title) || hasNonASCII(doc.Subtitle) {
		return true
	}
	for _, sec := range doc.Sections {
		if hasNonASCII(sec.Title) {
			return true
		}
		for _, b := range sec.Badges {
			if hasNonASCII(b) {
				return true
			}
		}
		for _, f := range sec.Fields {
			if hasNonASCII(f.Label) || hasNonASCII(f.Value) {
				return true
			}
		}
	}
	return false
}

func hasNonASCII(s string) bool {
	for _, r := range s {
		if r > unicode.MaxASCII {
			return true
		}
	}
	return false
}
