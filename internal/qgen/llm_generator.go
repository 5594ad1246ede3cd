package qgen

import (
	"context"
	"fmt"

	"github.com/quizmith/quizmith/internal/llm"
	"github.com/quizmith/quizmith/internal/quiz"
)

// LLMGenerator implements Generator using the LLM provider layer.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// Generate requests a question batch for the topic and returns the
// well-formed questions from it.
func (g *LLMGenerator) Generate(ctx context.Context, topic string) ([]quiz.Question, error) {
	ctx = llm.WithPurpose(ctx, "question-gen")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(topic, g.config.BatchSize)},
		},
		Schema:      BatchSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("question generation failed: %w", err)
	}

	batch, err := extractBatch(resp.Content)
	if err != nil {
		return nil, err
	}

	questions := make([]quiz.Question, len(batch))
	for i, q := range batch {
		questions[i] = quiz.Question{
			Text:        q.Question,
			Options:     q.Options,
			Answer:      quiz.Letter(q.Answer),
			Explanation: q.Explanation,
		}
	}

	return quiz.FilterValid(questions), nil
}
