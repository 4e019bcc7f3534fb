package upstream

import (
	"testing"

	"github.com/baalimago/go_away_boilerplate/pkg/testboil"
)

func TestSolutionSchemaRequiresEveryField(t *testing.T) {
	s := SolutionSchema(false)
	required := s["required"].([]any)
	testboil.FailTestIfDiff(t, len(required), 5)

	steps := s["properties"].(map[string]any)["steps"].(map[string]any)
	items := steps["items"].(map[string]any)
	stepRequired := items["required"].([]any)
	testboil.FailTestIfDiff(t, len(stepRequired), 3)
	testboil.FailTestIfDiff(t, stepRequired[2].(string), "latex")

	if _, ok := s["additionalProperties"]; ok {
		t.Fatal("non-strict schema must not carry additionalProperties")
	}
}

func TestSolutionSchemaStrict(t *testing.T) {
	s := SolutionSchema(true)
	testboil.FailTestIfDiff(t, s["additionalProperties"].(bool), false)

	items := s["properties"].(map[string]any)["steps"].(map[string]any)["items"].(map[string]any)
	testboil.FailTestIfDiff(t, items["additionalProperties"].(bool), false)
}
