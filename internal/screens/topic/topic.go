// Package topic is the landing screen: the learner names a topic and a
// session starts.
package topic

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/quizmith/quizmith/internal/advisor"
	"github.com/quizmith/quizmith/internal/qgen"
	"github.com/quizmith/quizmith/internal/router"
	"github.com/quizmith/quizmith/internal/screen"
	"github.com/quizmith/quizmith/internal/screens/history"
	"github.com/quizmith/quizmith/internal/screens/quiz"
	"github.com/quizmith/quizmith/internal/store"
	"github.com/quizmith/quizmith/internal/ui/components"
	"github.com/quizmith/quizmith/internal/ui/layout"
	"github.com/quizmith/quizmith/internal/ui/theme"
)

// TopicScreen collects the quiz topic. Leaving it blank runs the
// built-in sample set, so the app works without any API key.
type TopicScreen struct {
	loader *qgen.Loader
	adv    advisor.Advisor
	repo   store.EventRepo

	input components.TextInput
}

var _ screen.Screen = (*TopicScreen)(nil)
var _ screen.KeyHintProvider = (*TopicScreen)(nil)

// New creates the topic screen with the collaborators every session
// will need.
func New(loader *qgen.Loader, adv advisor.Advisor, repo store.EventRepo) *TopicScreen {
	return &TopicScreen{
		loader: loader,
		adv:    adv,
		repo:   repo,
		input:  components.NewTextInput("e.g. photosynthesis, the French Revolution...", 120),
	}
}

func (s *TopicScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *TopicScreen) Title() string {
	return "New Quiz"
}

func (s *TopicScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Start quiz"},
		{Key: "Ctrl+H", Description: "History"},
	}
}

func (s *TopicScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter":
			topic := strings.TrimSpace(s.input.Value())
			s.input.Clear()
			next := quiz.New(topic, s.loader, s.adv, s.repo)
			return s, func() tea.Msg { return router.PushScreenMsg{Screen: next} }
		case "ctrl+h":
			return s, func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(s.repo)}
			}
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *TopicScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(theme.Title.Render("What would you like to learn today?")))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.input.View()))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(theme.Hint.Render("Leave blank for a sample quiz")))
	return b.String()
}
