// Package summary shows the recap at the end of a quiz session.
package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/quizmith/quizmith/internal/quiz"
	"github.com/quizmith/quizmith/internal/router"
	"github.com/quizmith/quizmith/internal/screen"
	"github.com/quizmith/quizmith/internal/session"
	"github.com/quizmith/quizmith/internal/ui/components"
	"github.com/quizmith/quizmith/internal/ui/layout"
	"github.com/quizmith/quizmith/internal/ui/theme"
)

// SummaryScreen recaps one finished session from its frozen response
// records. The live session state is gone by the time this renders, so
// everything shown comes from the snapshot taken at construction.
type SummaryScreen struct {
	topic     string
	responses []session.Response
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New snapshots the completed session.
func New(state *session.State) *SummaryScreen {
	topic := state.Topic
	if topic == "" {
		topic = "Sample Quiz"
	}
	responses := make([]session.Response, len(state.Responses))
	copy(responses, state.Responses)
	return &SummaryScreen{topic: topic, responses: responses}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Session Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "New quiz"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	correct := 0
	for _, r := range s.responses {
		if r.Outcome == quiz.OutcomeCorrect {
			correct++
		}
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(theme.Title.Render(s.topic)))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d of %d correct", correct, len(s.responses))))
	b.WriteString("\n\n")

	if len(s.responses) > 0 {
		bar := components.NewProgressBar("Accuracy",
			float64(correct)/float64(len(s.responses)), true, min(width-20, 50))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
		b.WriteString("\n\n")
	}

	var rows strings.Builder
	for _, r := range s.responses {
		mark := theme.Correct.Render("✓")
		if r.Outcome == quiz.OutcomeIncorrect {
			mark = theme.Incorrect.Render("✗")
		}

		question := r.Question
		if maxLen := width - 30; maxLen > 3 {
			question = layout.Truncate(question, maxLen)
		}

		rows.WriteString(fmt.Sprintf("%s  %d. %s\n", mark, r.QuestionIndex+1,
			lipgloss.NewStyle().Foreground(theme.Text).Render(question)))
		rows.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(
			fmt.Sprintf("      answered %s (correct %s) · %s", r.Selected, r.Correct, r.Confidence)))
		rows.WriteString("\n")
		if r.Review != nil {
			rows.WriteString(theme.Advisory.Render(
				fmt.Sprintf("      review on %s via %s",
					r.Review.ReviewDate.Format("Jan 02, 2006"), r.Review.Mode)))
			rows.WriteString("\n")
		}
		rows.WriteString("\n")
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, rows.String()))
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(theme.Hint.Render("Press Enter to start another quiz")))
	return b.String()
}
