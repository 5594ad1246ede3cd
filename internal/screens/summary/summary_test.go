package summary

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/quizmith/quizmith/internal/quiz"
	"github.com/quizmith/quizmith/internal/router"
	"github.com/quizmith/quizmith/internal/schedule"
	"github.com/quizmith/quizmith/internal/session"
)

func completedState() *session.State {
	s := session.NewState()
	s.Topic = "Tides"
	s.Responses = []session.Response{
		{
			QuestionIndex: 0,
			Question:      "What causes tides?",
			Selected:      quiz.LetterB,
			Correct:       quiz.LetterB,
			Outcome:       quiz.OutcomeCorrect,
			Confidence:    schedule.ConfidenceHigh,
			Review: &schedule.Review{
				Concept:    "What causes tides?",
				ReviewDate: time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
				Mode:       schedule.ModeEmail,
			},
		},
		{
			QuestionIndex: 1,
			Question:      "How often do spring tides occur?",
			Selected:      quiz.LetterA,
			Correct:       quiz.LetterC,
			Outcome:       quiz.OutcomeIncorrect,
			Confidence:    schedule.ConfidenceLow,
		},
	}
	return s
}

func TestSummaryView(t *testing.T) {
	s := New(completedState())
	view := s.View(100, 30)

	for _, want := range []string{
		"Tides",
		"1 of 2 correct",
		"What causes tides?",
		"Mar 09, 2026",
		"Email",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestSummarySnapshotsResponses(t *testing.T) {
	state := completedState()
	s := New(state)
	state.Responses[0].Question = "mutated"

	if strings.Contains(s.View(100, 30), "mutated") {
		t.Error("summary must snapshot responses at construction")
	}
}

func TestSummaryEnterPopsBack(t *testing.T) {
	s := New(completedState())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a navigation command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}
