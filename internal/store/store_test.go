package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "quizmith.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestLLMEventRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendLLMEvent(ctx, LLMEventData{
		Provider:     "mock",
		Model:        "mock",
		Purpose:      "advisory",
		InputTokens:  120,
		OutputTokens: 48,
		LatencyMs:    350,
		Success:      true,
		RequestBody:  "[system]\nYou are a tutor.",
		ResponseBody: "Take your time.",
	}))
	require.NoError(t, repo.AppendLLMEvent(ctx, LLMEventData{
		Provider:     "mock",
		Model:        "mock",
		Purpose:      "question-gen",
		Success:      false,
		ErrorMessage: "provider unavailable",
	}))

	events, err := repo.QueryLLMEvents(ctx, 10)
	require.NoError(t, err)
	require.Len(t, events, 2)

	// Newest first.
	require.Equal(t, "question-gen", events[0].Purpose)
	require.False(t, events[0].Success)
	require.Equal(t, "advisory", events[1].Purpose)
	require.True(t, events[1].Success)
	require.Equal(t, 120, events[1].InputTokens)

	full, err := repo.GetLLMEvent(ctx, events[1].ID)
	require.NoError(t, err)
	require.NotNil(t, full)
	require.Equal(t, "Take your time.", full.ResponseBody)

	missing, err := repo.GetLLMEvent(ctx, 9999)
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestUsageByPurpose(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.AppendLLMEvent(ctx, LLMEventData{
			Provider: "mock", Model: "mock", Purpose: "advisory",
			InputTokens: 100, OutputTokens: 50, LatencyMs: 200, Success: true,
		}))
	}
	require.NoError(t, repo.AppendLLMEvent(ctx, LLMEventData{
		Provider: "mock", Model: "mock", Purpose: "question-gen",
		InputTokens: 400, OutputTokens: 800, LatencyMs: 900, Success: true,
	}))

	usage, err := repo.UsageByPurpose(ctx)
	require.NoError(t, err)
	require.Len(t, usage, 2)

	byPurpose := map[string]LLMUsage{}
	for _, u := range usage {
		byPurpose[u.Purpose] = u
	}
	require.Equal(t, 3, byPurpose["advisory"].Calls)
	require.Equal(t, 300, byPurpose["advisory"].InputTokens)
	require.Equal(t, 1, byPurpose["question-gen"].Calls)
	require.Equal(t, 800, byPurpose["question-gen"].OutputTokens)
}

func TestResponseRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	review := time.Date(2025, 4, 8, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.AppendResponse(ctx, ResponseData{
		SessionID:     "sess-1",
		At:            time.Now(),
		Topic:         "chemistry",
		QuestionIndex: 0,
		Question:      "What is the chemical symbol for gold?",
		Selected:      "C",
		Correct:       "C",
		Outcome:       "Correct",
		Confidence:    "High",
		Reflection:    "remembered aurum",
		ReviewDate:    &review,
		DeliveryMode:  "Email",
	}))
	require.NoError(t, repo.AppendResponse(ctx, ResponseData{
		SessionID:     "sess-1",
		At:            time.Now(),
		QuestionIndex: 1,
		Question:      "Which planet is known as the 'Red Planet'?",
		Selected:      "A",
		Correct:       "B",
		Outcome:       "Incorrect",
		Confidence:    "Low",
	}))

	recs, err := repo.QueryResponses(ctx, 0)
	require.NoError(t, err)
	require.Len(t, recs, 2)

	// Newest first; the second insert has no review date.
	require.Equal(t, 1, recs[0].QuestionIndex)
	require.Nil(t, recs[0].ReviewDate)
	require.Equal(t, "Incorrect", recs[0].Outcome)

	require.Equal(t, 0, recs[1].QuestionIndex)
	require.NotNil(t, recs[1].ReviewDate)
	require.Equal(t, review.Unix(), recs[1].ReviewDate.Unix())
	require.Equal(t, "chemistry", recs[1].Topic)
}

func TestAppendInteraction(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendInteraction(ctx, InteractionData{
		SessionID: "sess-1",
		At:        time.Now(),
		Role:      "Comprehension Coach",
		Message:   "Read each option fully before deciding.",
	}))

	var count int
	require.NoError(t, s.DB().QueryRow("SELECT COUNT(*) FROM interactions").Scan(&count))
	require.Equal(t, 1, count)
}
