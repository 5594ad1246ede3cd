package store

import (
	"context"
	"time"
)

// LLMEventData captures one LLM API call for the audit log.
type LLMEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEventRecord is a stored LLM event plus its identity and timestamp.
type LLMEventRecord struct {
	ID        int
	Timestamp time.Time
	LLMEventData
}

// LLMUsage aggregates token consumption per purpose label.
type LLMUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// InteractionData is one advisory exchange recorded against a session.
type InteractionData struct {
	SessionID string
	At        time.Time
	Role      string
	Message   string
}

// ResponseData is the frozen record of one completed question.
type ResponseData struct {
	SessionID     string
	At            time.Time
	Topic         string
	QuestionIndex int
	Question      string
	Selected      string
	Correct       string
	Outcome       string
	Confidence    string
	Reflection    string
	ReviewDate    *time.Time
	DeliveryMode  string
}

// ResponseRecord is a stored response plus its identity.
type ResponseRecord struct {
	ID int
	ResponseData
}

// EventRepo provides append and query access to the audit trail.
// Implementations must tolerate concurrent appends from advisory
// goroutines.
type EventRepo interface {
	// AppendLLMEvent records an LLM API call.
	AppendLLMEvent(ctx context.Context, data LLMEventData) error

	// QueryLLMEvents returns the most recent LLM events, newest first.
	// limit <= 0 means no limit.
	QueryLLMEvents(ctx context.Context, limit int) ([]LLMEventRecord, error)

	// GetLLMEvent returns one event by ID, or nil when absent.
	GetLLMEvent(ctx context.Context, id int) (*LLMEventRecord, error)

	// UsageByPurpose aggregates token usage grouped by purpose label.
	UsageByPurpose(ctx context.Context) ([]LLMUsage, error)

	// AppendInteraction records one advisory exchange.
	AppendInteraction(ctx context.Context, data InteractionData) error

	// AppendResponse records one frozen question response.
	AppendResponse(ctx context.Context, data ResponseData) error

	// QueryResponses returns the most recent responses, newest first.
	// limit <= 0 means no limit.
	QueryResponses(ctx context.Context, limit int) ([]ResponseRecord, error)
}
