package upstream

// SolutionSchema is the response schema for a MathSolution.
// Strict variants close every object with additionalProperties=false, which
// OpenAI structured outputs require and the Gemini schema dialect rejects.
func SolutionSchema(strict bool) map[string]any {
	step := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title":       map[string]any{"type": "string"},
			"description": map[string]any{"type": "string"},
			"latex":       map[string]any{"type": "string"},
		},
		"required": []any{"title", "description", "latex"},
	}

	root := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"problemSummary": map[string]any{"type": "string"},
			"steps": map[string]any{
				"type":  "array",
				"items": step,
			},
			"finalAnswer":        map[string]any{"type": "string"},
			"conceptExplanation": map[string]any{"type": "string"},
			"relatedFormulas": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required": []any{
			"problemSummary",
			"steps",
			"finalAnswer",
			"conceptExplanation",
			"relatedFormulas",
		},
	}

	if strict {
		step["additionalProperties"] = false
		root["additionalProperties"] = false
	}
	return root
}
