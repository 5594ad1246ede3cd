package llm

import "context"

type contextKey string

const purposeKey contextKey = "llm-purpose"

// WithPurpose tags the context with a short label describing why the LLM
// call is being made (e.g. "question-gen", "advisory-comprehension").
// The logging decorator records it alongside the event.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom extracts the purpose label, or "" when none was set.
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey).(string); ok {
		return v
	}
	return ""
}
