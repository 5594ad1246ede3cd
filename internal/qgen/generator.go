// Package qgen produces multiple-choice question batches for a topic
// using the LLM provider layer, with a built-in fallback set so a quiz
// session can always start.
package qgen

import (
	"context"

	"github.com/quizmith/quizmith/internal/quiz"
)

// Generator produces a batch of questions for a topic.
type Generator interface {
	// Generate produces questions for the given topic. The returned
	// batch is already filtered down to well-formed questions and may
	// be shorter than requested, or empty.
	Generate(ctx context.Context, topic string) ([]quiz.Question, error)
}
