package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func letterSchema() *Schema {
	return &Schema{
		Name:        "letter-pick",
		Description: "A single answer letter",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"answer": map[string]any{
					"type": "string",
					"enum": []any{"A", "B", "C", "D"},
				},
			},
			"required":             []any{"answer"},
			"additionalProperties": false,
		},
	}
}

func TestValidateResponse_NilSchemaAllowsAnything(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`not even json`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateResponse_Valid(t *testing.T) {
	if err := validateResponse(letterSchema(), json.RawMessage(`{"answer":"B"}`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateResponse_MalformedJSON(t *testing.T) {
	err := validateResponse(letterSchema(), json.RawMessage(`{"answer":`))
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got: %v", err)
	}
}

func TestValidateResponse_SchemaViolation(t *testing.T) {
	err := validateResponse(letterSchema(), json.RawMessage(`{"answer":"E"}`))
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got: %v", err)
	}
}

func TestValidateResponse_MissingRequiredField(t *testing.T) {
	err := validateResponse(letterSchema(), json.RawMessage(`{}`))
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got: %v", err)
	}
}

func TestValidateResponse_CachedSchemaStillValidates(t *testing.T) {
	s := letterSchema()
	if err := validateResponse(s, json.RawMessage(`{"answer":"A"}`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Second call hits the compiled-schema cache.
	err := validateResponse(s, json.RawMessage(`{"answer":"Z"}`))
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got: %v", err)
	}
}
