// Package advisor produces side-channel tutor commentary during a quiz
// session. Advisory text is informational only: calls may fail, and when
// they do the caller gets a deterministic placeholder instead of an
// error, so session flow never depends on provider health.
package advisor

import (
	"context"
	"fmt"
	"strings"

	"github.com/quizmith/quizmith/internal/llm"
)

// Advisor produces advisory text for a role and context.
type Advisor interface {
	// Advise returns advisory text. It never fails: any provider error
	// degrades to Placeholder(role).
	Advise(ctx context.Context, role Role, instructions, context string) string
}

// Service is the LLM-backed Advisor.
type Service struct {
	provider    llm.Provider
	maxTokens   int
	temperature float64
}

// NewService creates an advisor backed by the given provider. A nil
// provider is allowed; every call then returns the placeholder.
func NewService(provider llm.Provider) *Service {
	return &Service{
		provider:    provider,
		maxTokens:   256,
		temperature: 0.8,
	}
}

// Advise asks the provider for advisory text in the given role's voice.
func (s *Service) Advise(ctx context.Context, role Role, instructions, callContext string) string {
	if s.provider == nil {
		return Placeholder(role)
	}

	ctx = llm.WithPurpose(ctx, purposeFor(role))

	resp, err := s.provider.Generate(ctx, llm.Request{
		System: instructions,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: callContext},
		},
		MaxTokens:   s.maxTokens,
		Temperature: s.temperature,
	})
	if err != nil {
		return Placeholder(role)
	}

	text := strings.TrimSpace(string(resp.Content))
	if text == "" {
		return Placeholder(role)
	}
	return text
}

// Placeholder is the deterministic substitute shown when an advisory
// call fails. It embeds the role name so the learner can tell which
// voice went missing.
func Placeholder(role Role) string {
	return fmt.Sprintf("[%s would respond here. Call failed]", role)
}

// purposeFor maps a role to its audit-log purpose label.
func purposeFor(role Role) string {
	switch role {
	case RoleComprehension:
		return "advisory-comprehension"
	case RoleConfidence:
		return "advisory-confidence"
	case RoleDepthCheck:
		return "advisory-depth-check"
	case RoleReflection:
		return "advisory-reflection"
	case RoleScheduler:
		return "advisory-scheduler"
	default:
		return "advisory"
	}
}
