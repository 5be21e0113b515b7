package gaps

import "github.com/oslerai/preceptor/internal/llm"

// AnalysisSchema is the JSON schema for gap-analysis responses.
var AnalysisSchema = &llm.Schema{
	Name:        "gap-analysis",
	Description: "Decomposition of a learner's answer into knowledge gaps and strengths",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"critical_gaps": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Missing or wrong knowledge that would endanger a patient or blocks all further progress",
			},
			"important_gaps": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Significant omissions that should be remediated this session",
			},
			"minor_gaps": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Nice-to-know details and refinements",
			},
			"strength_areas": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "What the answer demonstrates the learner already understands",
			},
		},
		"required":             []any{"critical_gaps", "important_gaps", "minor_gaps", "strength_areas"},
		"additionalProperties": false,
	},
}
