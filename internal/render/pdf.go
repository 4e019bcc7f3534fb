package render

import (
	"context"
	"fmt"
	"strings"

	"codeberg.org/go-pdf/fpdf"
	"github.com/kdduha/sceramath/pkg/chat"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type PDFConfig struct {
	PageSize     string
	MarginsMM    float64
	FontFamily   string
	PrimaryColor [3]int
}

var DefaultPDFConfig = PDFConfig{
	PageSize:     "A4",
	MarginsMM:    15,
	FontFamily:   "Helvetica",
	PrimaryColor: [3]int{79, 70, 229},
}

type PDFExporter struct {
	cfg PDFConfig
}

func NewPDFExporter(cfg PDFConfig) *PDFExporter {
	return &PDFExporter{cfg}
}

// Export writes every solved problem of a transcript to outputFilePath.
func (p *PDFExporter) Export(ctx context.Context, title string, messages []chat.ChatMessage, outputFilePath string) error {
	pdf := fpdf.New("P", "mm", p.cfg.PageSize, "")
	pdf.SetMargins(p.cfg.MarginsMM, p.cfg.MarginsMM, p.cfg.MarginsMM)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	heading := cases.Title(language.English).String(strings.ReplaceAll(title, "_", " "))
	pdf.SetTitle(heading, true)
	pdf.AddPage()

	// ---------- title ----------
	pdf.SetFont(p.cfg.FontFamily, "B", 20)
	pdf.SetTextColor(p.cfg.PrimaryColor[0], p.cfg.PrimaryColor[1], p.cfg.PrimaryColor[2])
	pdf.CellFormat(0, 14, tr(heading), "", 1, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(6)

	var question string
	solved := 0
	for _, m := range messages {
		if err := ctx.Err(); err != nil {
			return err
		}
		if m.Role == chat.RoleUser {
			question = m.Content
			continue
		}
		if m.Solution == nil {
			continue
		}
		solved++
		s := m.Solution

		// ---------- problem ----------
		pdf.SetFont(p.cfg.FontFamily, "B", 14)
		pdf.MultiCell(0, 8, tr(fmt.Sprintf("%d. %s", solved, s.ProblemSummary)), "", "L", false)
		if question != "" {
			pdf.SetFont(p.cfg.FontFamily, "I", 10)
			pdf.MultiCell(0, 6, tr("Asked: "+question), "", "L", false)
		}
		pdf.Ln(2)

		// ---------- steps ----------
		for i, step := range s.Steps {
			pdf.SetFont(p.cfg.FontFamily, "B", 11)
			pdf.MultiCell(0, 6, tr(fmt.Sprintf("Step %d: %s", i+1, step.Title)), "", "L", false)
			pdf.SetFont(p.cfg.FontFamily, "", 11)
			pdf.MultiCell(0, 6, tr(step.Description), "", "L", false)
			if step.Latex != "" {
				pdf.SetFont("Courier", "", 10)
				pdf.MultiCell(0, 6, tr(step.Latex), "", "L", false)
			}
		}

		// ---------- answer ----------
		pdf.Ln(2)
		pdf.SetFont(p.cfg.FontFamily, "B", 12)
		pdf.MultiCell(0, 7, tr("Answer: "+s.FinalAnswer), "", "L", false)
		if s.ConceptExplanation != "" {
			pdf.SetFont(p.cfg.FontFamily, "", 10)
			pdf.MultiCell(0, 6, tr(s.ConceptExplanation), "", "L", false)
		}
		for _, f := range s.RelatedFormulas {
			pdf.SetFont("Courier", "", 10)
			pdf.MultiCell(0, 6, tr("- "+f), "", "L", false)
		}
		pdf.Ln(6)
	}

	if solved == 0 {
		return fmt.Errorf("transcript has no solutions to export")
	}
	return pdf.OutputFileAndClose(outputFilePath)
}
