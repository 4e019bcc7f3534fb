// Package render turns solutions into terminal text and PDF documents.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/kdduha/sceramath/internal/models"
)

// Text writes a plain-text rendering of a solution. LaTeX is printed as-is.
func Text(w io.Writer, s *models.MathSolution) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Problem: %s\n\n", s.ProblemSummary)
	for i, step := range s.Steps {
		fmt.Fprintf(&b, "%d. %s\n", i+1, step.Title)
		if step.Description != "" {
			fmt.Fprintf(&b, "   %s\n", step.Description)
		}
		if step.Latex != "" {
			fmt.Fprintf(&b, "   $$ %s $$\n", step.Latex)
		}
	}
	if len(s.Steps) > 0 {
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "Answer: %s\n", s.FinalAnswer)
	if s.ConceptExplanation != "" {
		fmt.Fprintf(&b, "\nConcept: %s\n", s.ConceptExplanation)
	}
	if len(s.RelatedFormulas) > 0 {
		b.WriteString("\nRelated formulas:\n")
		for _, f := range s.RelatedFormulas {
			fmt.Fprintf(&b, "  - %s\n", f)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}
