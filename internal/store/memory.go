package store

import (
	"context"
	"sync"
	"time"
)

// MemoryRepo is an in-memory EventRepo. It backs the app when the
// database cannot be opened and keeps tests free of filesystem setup.
type MemoryRepo struct {
	mu           sync.Mutex
	llmEvents    []LLMEventRecord
	interactions []InteractionData
	responses    []ResponseRecord
}

var _ EventRepo = (*MemoryRepo)(nil)

// NewMemoryRepo creates an empty in-memory repo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

func (m *MemoryRepo) AppendLLMEvent(_ context.Context, data LLMEventData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.llmEvents = append(m.llmEvents, LLMEventRecord{
		ID:           len(m.llmEvents) + 1,
		Timestamp:    time.Now(),
		LLMEventData: data,
	})
	return nil
}

func (m *MemoryRepo) QueryLLMEvents(_ context.Context, limit int) ([]LLMEventRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]LLMEventRecord, 0, len(m.llmEvents))
	for i := len(m.llmEvents) - 1; i >= 0; i-- {
		out = append(out, m.llmEvents[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (m *MemoryRepo) GetLLMEvent(_ context.Context, id int) (*LLMEventRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.llmEvents {
		if m.llmEvents[i].ID == id {
			rec := m.llmEvents[i]
			return &rec, nil
		}
	}
	return nil, nil
}

func (m *MemoryRepo) UsageByPurpose(_ context.Context) ([]LLMUsage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	byPurpose := make(map[string]*LLMUsage)
	var order []string
	for _, e := range m.llmEvents {
		u, ok := byPurpose[e.Purpose]
		if !ok {
			u = &LLMUsage{Purpose: e.Purpose}
			byPurpose[e.Purpose] = u
			order = append(order, e.Purpose)
		}
		u.Calls++
		u.InputTokens += e.InputTokens
		u.OutputTokens += e.OutputTokens
	}
	out := make([]LLMUsage, 0, len(order))
	for _, p := range order {
		out = append(out, *byPurpose[p])
	}
	return out, nil
}

func (m *MemoryRepo) AppendInteraction(_ context.Context, data InteractionData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.interactions = append(m.interactions, data)
	return nil
}

func (m *MemoryRepo) AppendResponse(_ context.Context, data ResponseData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, ResponseRecord{
		ID:           len(m.responses) + 1,
		ResponseData: data,
	})
	return nil
}

func (m *MemoryRepo) QueryResponses(_ context.Context, limit int) ([]ResponseRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]ResponseRecord, 0, len(m.responses))
	for i := len(m.responses) - 1; i >= 0; i-- {
		out = append(out, m.responses[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

// Interactions returns a copy of all recorded interactions, for tests.
func (m *MemoryRepo) Interactions() []InteractionData {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]InteractionData, len(m.interactions))
	copy(out, m.interactions)
	return out
}

// LLMEventCount returns the number of recorded LLM events, for tests.
func (m *MemoryRepo) LLMEventCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.llmEvents)
}
