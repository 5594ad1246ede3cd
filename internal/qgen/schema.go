package qgen

import "github.com/quizmith/quizmith/internal/llm"

// BatchSchema defines the JSON schema for LLM question batch responses.
var BatchSchema = &llm.Schema{
	Name:        "question-batch",
	Description: "A batch of multiple-choice quiz questions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{
							"type":        "string",
							"description": "The question prompt shown to the learner",
						},
						"options": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"minItems":    4,
							"maxItems":    4,
							"description": "Exactly 4 answer options, in A-D order",
						},
						"answer": map[string]any{
							"type":        "string",
							"enum":        []any{"A", "B", "C", "D"},
							"description": "The letter of the correct option",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "A brief explanation of why the answer is correct",
						},
					},
					"required":             []any{"question", "options", "answer", "explanation"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
