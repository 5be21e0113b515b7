package assess

import "github.com/oslerai/preceptor/internal/llm"

// GradeSchema is the JSON schema for grading responses.
var GradeSchema = &llm.Schema{
	Name:        "answer-grade",
	Description: "Quality grade for a learner's answer against a tutoring rubric",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"quality": map[string]any{
				"type":        "string",
				"enum":        []any{"excellent", "good", "partial", "incorrect", "confused"},
				"description": "Overall answer quality on the 5-point rubric",
			},
			"specific_gaps": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Concrete pieces of knowledge that were missing or wrong, one short phrase each",
			},
		},
		"required":             []any{"quality", "specific_gaps"},
		"additionalProperties": false,
	},
}

// ReasoningSchema is the JSON schema for clinical-reasoning scoring.
var ReasoningSchema = &llm.Schema{
	Name:        "reasoning-score",
	Description: "Score for the causal structure of a learner's answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"score": map[string]any{
				"type":        "number",
				"minimum":     0.0,
				"maximum":     1.0,
				"description": "How well the answer chains mechanisms to consequences, 0.0-1.0",
			},
			"strengths": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Sound reasoning moves observed, one short phrase each",
			},
		},
		"required":             []any{"score", "strengths"},
		"additionalProperties": false,
	},
}
