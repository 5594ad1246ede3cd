// Package history lists previously answered questions and their
// scheduled reviews.
package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/quizmith/quizmith/internal/router"
	"github.com/quizmith/quizmith/internal/screen"
	"github.com/quizmith/quizmith/internal/store"
	"github.com/quizmith/quizmith/internal/ui/layout"
	"github.com/quizmith/quizmith/internal/ui/theme"
)

const historyLimit = 50

type historyLoadedMsg struct {
	Responses []store.ResponseRecord
	Err       error
}

// HistoryScreen displays past question responses, newest first.
type HistoryScreen struct {
	eventRepo store.EventRepo
	responses []store.ResponseRecord
	selected  int
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(eventRepo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{eventRepo: eventRepo}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		if s.eventRepo == nil {
			return historyLoadedMsg{}
		}
		responses, err := s.eventRepo.QueryResponses(context.Background(), historyLimit)
		return historyLoadedMsg{Responses: responses, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.responses = msg.Responses
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.responses)-1 {
				s.selected++
			}
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.responses) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  Nothing answered yet. Start a quiz!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, r := range s.responses {
		mark := theme.Correct.Render("✓")
		if r.Outcome != "Correct" {
			mark = theme.Incorrect.Render("✗")
		}

		topic := r.Topic
		if topic == "" {
			topic = "Sample Quiz"
		}

		question := r.Question
		if maxLen := width - 40; maxLen > 3 {
			question = layout.Truncate(question, maxLen)
		}

		line := fmt.Sprintf("%s  %s  %s · %s",
			r.At.Format("Jan 02"), mark,
			lipgloss.NewStyle().Foreground(theme.Accent).Render(topic),
			question)

		prefix := "  "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			prefix = "▸ "
			style = style.Bold(true)
		}
		b.WriteString(prefix + style.Render(line) + "\n")

		if i == s.selected {
			detail := fmt.Sprintf("     answered %s (correct %s) · confidence %s",
				r.Selected, r.Correct, r.Confidence)
			if r.ReviewDate != nil {
				detail += fmt.Sprintf(" · review %s via %s",
					r.ReviewDate.Format("Jan 02, 2006"), r.DeliveryMode)
			}
			b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(detail) + "\n")
		}
	}

	return b.String()
}
