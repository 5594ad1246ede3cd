package qgen

import (
	"context"
	"strings"

	"github.com/quizmith/quizmith/internal/quiz"
)

// Loader is the front door for question loading. It wraps a Generator
// and guarantees a usable batch: session start never fails for lack of
// questions.
type Loader struct {
	gen Generator
}

// NewLoader creates a Loader. A nil generator means every topic gets
// the default set.
func NewLoader(gen Generator) *Loader {
	return &Loader{gen: gen}
}

// Load returns questions for the topic. An empty topic returns the
// default set without touching the generator. Generator errors and
// empty batches also fall back to the default set.
func (l *Loader) Load(ctx context.Context, topic string) []quiz.Question {
	topic = strings.TrimSpace(topic)
	if topic == "" || l.gen == nil {
		return quiz.DefaultQuestions()
	}

	questions, err := l.gen.Generate(ctx, topic)
	if err != nil || len(questions) == 0 {
		return quiz.DefaultQuestions()
	}

	return questions
}
