// Package app wires the screens into the root Bubble Tea model.
package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/quizmith/quizmith/internal/advisor"
	"github.com/quizmith/quizmith/internal/qgen"
	"github.com/quizmith/quizmith/internal/router"
	"github.com/quizmith/quizmith/internal/screen"
	"github.com/quizmith/quizmith/internal/screens/topic"
	"github.com/quizmith/quizmith/internal/store"
	"github.com/quizmith/quizmith/internal/ui/layout"
)

// Options carries the collaborators built during startup.
type Options struct {
	// Loader resolves question batches. Required.
	Loader *qgen.Loader

	// Advisor produces coaching text. Required; a Service with a nil
	// provider degrades to placeholders.
	Advisor advisor.Advisor

	// EventRepo persists responses and advisory interactions. Optional.
	EventRepo store.EventRepo
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

func newAppModel(opts Options) AppModel {
	start := topic.New(opts.Loader, opts.Advisor, opts.EventRepo)
	return AppModel{
		router: router.New(start),
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			// Esc backs out of any pushed screen, abandoning an active
			// quiz. In-flight calls for the abandoned session resolve
			// against a dead session ID and are dropped.
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	sessionTopic := ""
	questionNum, questionTotal := 0, 0
	if provider, ok := active.(screen.SessionContextProvider); ok {
		sessionTopic, questionNum, questionTotal = provider.SessionContext()
	}

	header := layout.RenderHeader(title, sessionTopic, questionNum, questionTotal, m.width)

	footerHints := []layout.KeyHint{
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = append(provider.KeyHints(), footerHints...)
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
