package advisor

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/quizmith/quizmith/internal/llm"
)

func TestAdvise_ReturnsProviderText(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage("Photosynthesis converts light into chemical energy.\n"),
	})
	s := NewService(mock)

	got := s.Advise(context.Background(), RoleComprehension, Instructions(RoleComprehension), "Question: ...")
	if got != "Photosynthesis converts light into chemical energy." {
		t.Fatalf("unexpected text: %q", got)
	}

	if len(mock.Calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(mock.Calls))
	}
	req := mock.Calls[0]
	if req.System != Instructions(RoleComprehension) {
		t.Fatalf("instructions not passed as system prompt")
	}
	if req.Messages[0].Content != "Question: ..." {
		t.Fatalf("context not passed as user message: %q", req.Messages[0].Content)
	}
}

func TestAdvise_FailureYieldsPlaceholder(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("down")},
	})
	s := NewService(mock)

	got := s.Advise(context.Background(), RoleComprehension, Instructions(RoleComprehension), "ctx")
	want := "[Comprehension Coach would respond here. Call failed]"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	if !strings.Contains(got, "Comprehension") {
		t.Fatalf("placeholder must name the role: %q", got)
	}
}

func TestAdvise_EmptyResponseYieldsPlaceholder(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage("   \n"),
	})
	s := NewService(mock)

	got := s.Advise(context.Background(), RoleReflection, Instructions(RoleReflection), "ctx")
	if got != Placeholder(RoleReflection) {
		t.Fatalf("got %q", got)
	}
}

func TestAdvise_NilProviderYieldsPlaceholder(t *testing.T) {
	s := NewService(nil)
	got := s.Advise(context.Background(), RoleScheduler, Instructions(RoleScheduler), "ctx")
	if got != "[Review Planner would respond here. Call failed]" {
		t.Fatalf("got %q", got)
	}
}

func TestInstructions_EveryRoleHasTemplate(t *testing.T) {
	roles := []Role{RoleComprehension, RoleConfidence, RoleDepthCheck, RoleReflection, RoleScheduler}
	seen := make(map[string]bool)
	for _, r := range roles {
		ins := Instructions(r)
		if ins == "" {
			t.Fatalf("role %q has no instructions", r)
		}
		if seen[ins] {
			t.Fatalf("role %q shares instructions with another role", r)
		}
		seen[ins] = true
	}
}
