package history

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/quizmith/quizmith/internal/router"
	"github.com/quizmith/quizmith/internal/store"
)

func loadedScreen(t *testing.T) *HistoryScreen {
	t.Helper()
	repo := store.NewMemoryRepo()
	review := time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC)
	err := repo.AppendResponse(context.Background(), store.ResponseData{
		SessionID:  "s1",
		At:         time.Date(2026, 8, 27, 10, 0, 0, 0, time.UTC),
		Topic:      "Tides",
		Question:   "What causes tides?",
		Selected:   "B",
		Correct:    "B",
		Outcome:    "Correct",
		Confidence: "High",
		ReviewDate:   &review,
		DeliveryMode: "Email",
	})
	if err != nil {
		t.Fatalf("AppendResponse: %v", err)
	}

	s := New(repo)
	scr, _ := s.Update(s.Init()())
	return scr.(*HistoryScreen)
}

func TestHistoryLoadsResponses(t *testing.T) {
	s := loadedScreen(t)
	view := s.View(100, 30)

	for _, want := range []string{"Tides", "What causes tides?", "Sep 03, 2026", "Email"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestHistoryEmptyState(t *testing.T) {
	s := New(store.NewMemoryRepo())
	scr, _ := s.Update(s.Init()())
	view := scr.View(100, 30)
	if !strings.Contains(view, "Nothing answered yet") {
		t.Error("expected empty-state message")
	}
}

func TestHistoryNilRepo(t *testing.T) {
	s := New(nil)
	scr, _ := s.Update(s.Init()())
	if view := scr.View(100, 30); view == "" {
		t.Error("expected a view with nil repo")
	}
}

func TestHistoryEscPops(t *testing.T) {
	s := loadedScreen(t)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected navigation command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}
