package render

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/kdduha/sceramath/internal/models"
	"github.com/kdduha/sceramath/pkg/chat"
)

func TestExportPDF(t *testing.T) {
	out := filepath.Join(t.TempDir(), "chat.pdf")
	messages := []chat.ChatMessage{
		{Role: chat.RoleUser, Content: "solve 2x = 4"},
		{Role: chat.RoleAssistant, Content: chat.AnalysisComplete, Solution: (&models.MathSolution{
			ProblemSummary: "Solve 2x = 4",
			Steps:          []models.MathStep{{Title: "Divide", Description: "by two", Latex: `x = \frac{4}{2}`}},
			FinalAnswer:    "x = 2",
		}).Normalize()},
		{Role: chat.RoleUser, Content: "broken"},
		{Role: chat.RoleAssistant, Content: chat.SynthesisFailed},
	}

	if err := NewPDFExporter(DefaultPDFConfig).Export(context.Background(), "linear_equations", messages, out); err != nil {
		t.Fatalf("export: %v", err)
	}
	info, err := os.Stat(out)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("empty pdf")
	}
}

func TestExportPDFWithoutSolutions(t *testing.T) {
	out := filepath.Join(t.TempDir(), "chat.pdf")
	messages := []chat.ChatMessage{{Role: chat.RoleAssistant, Content: chat.SynthesisFailed}}
	if err := NewPDFExporter(DefaultPDFConfig).Export(context.Background(), "t", messages, out); err == nil {
		t.Fatal("expected error for transcript without solutions")
	}
}
