// Package solution holds the structured answer shared by the proxy and its clients.
package solution

type MathStep struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Latex       string `json:"latex"`
}

// MathSolution is the structured answer returned by the model
type MathSolution struct {
	ProblemSummary     string     `json:"problemSummary"`
	Steps              []MathStep `json:"steps"`
	FinalAnswer        string     `json:"finalAnswer"`
	ConceptExplanation string     `json:"conceptExplanation"`
	RelatedFormulas    []string   `json:"relatedFormulas"`
}

// Normalize replaces absent arrays with empty ones so they encode as [] instead of null.
func (s *MathSolution) Normalize() *MathSolution {
	if s.Steps == nil {
		s.Steps = []MathStep{}
	}
	if s.RelatedFormulas == nil {
		s.RelatedFormulas = []string{}
	}
	return s
}
