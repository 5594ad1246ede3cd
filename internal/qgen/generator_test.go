package qgen

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/quizmith/quizmith/internal/llm"
)

func batchJSON(t *testing.T, batch []map[string]any) json.RawMessage {
	t.Helper()
	b, err := json.Marshal(map[string]any{"questions": batch})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return b
}

func validEntry(text string) map[string]any {
	return map[string]any{
		"question":    text,
		"options":     []string{"w", "x", "y", "z"},
		"answer":      "C",
		"explanation": "because",
	}
}

func TestGenerate_HappyPath(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: batchJSON(t, []map[string]any{
			validEntry("Q1?"),
			validEntry("Q2?"),
		}),
	})
	gen := New(mock, DefaultConfig())

	questions, err := gen.Generate(context.Background(), "tides")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(questions))
	}
	if questions[0].Text != "Q1?" || questions[0].Answer != "C" {
		t.Fatalf("unexpected question: %+v", questions[0])
	}

	// The request should carry the batch schema and mention the topic.
	if len(mock.Calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(mock.Calls))
	}
	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "question-batch" {
		t.Fatalf("schema not attached: %+v", req.Schema)
	}
	if req.Messages[0].Content != "Generate 5 multiple-choice questions about: tides" {
		t.Fatalf("unexpected user message: %q", req.Messages[0].Content)
	}
}

func TestGenerate_FiltersMalformedQuestions(t *testing.T) {
	bad := validEntry("Bad?")
	bad["answer"] = "E"
	short := validEntry("Short?")
	short["options"] = []string{"only", "two"}

	mock := llm.NewMockProvider(llm.MockResponse{
		Content: batchJSON(t, []map[string]any{
			validEntry("Good?"),
			bad,
			short,
		}),
	})
	gen := New(mock, DefaultConfig())

	questions, err := gen.Generate(context.Background(), "tides")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) != 1 || questions[0].Text != "Good?" {
		t.Fatalf("expected only the good question, got %+v", questions)
	}
}

func TestGenerate_ProviderErrorPropagates(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("down")},
	})
	gen := New(mock, DefaultConfig())

	if _, err := gen.Generate(context.Background(), "tides"); err == nil {
		t.Fatal("expected error")
	}
}

func TestGenerate_UnparseableResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`I'd rather not.`),
	})
	gen := New(mock, DefaultConfig())

	if _, err := gen.Generate(context.Background(), "tides"); err == nil {
		t.Fatal("expected error")
	}
}
