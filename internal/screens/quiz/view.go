package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	quizpkg "github.com/quizmith/quizmith/internal/quiz"
	"github.com/quizmith/quizmith/internal/session"
	"github.com/quizmith/quizmith/internal/ui/components"
	"github.com/quizmith/quizmith/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	var body string

	switch s.state.Phase {
	case session.PhaseInit, session.PhaseLoadingQuestions:
		body = s.renderLoading(width)
	case session.PhaseUnderstanding:
		body = s.renderUnderstanding(width)
	case session.PhaseComprehension:
		body = s.renderComprehension(width)
	case session.PhaseAnswering:
		body = s.renderAnswering(width)
	case session.PhaseConfidence:
		body = s.renderConfidence(width)
	case session.PhaseDepthCheck:
		body = s.renderDepthCheck(width)
	case session.PhaseCorrection:
		body = s.renderCorrection(width)
	case session.PhaseReflection:
		body = s.renderReflection(width)
	case session.PhaseScheduler:
		body = s.renderScheduler(width)
	case session.PhaseComplete:
		body = lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Render("\n\nSession complete!")
	}

	if s.errMsg != "" {
		body += "\n" + lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(s.errMsg)
	}

	return body
}

func (s *QuizScreen) renderLoading(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n  Preparing your questions...")
}

// renderQuestionHeader shows the question text with a separator line,
// shared by every per-question phase.
func (s *QuizScreen) renderQuestionHeader(width int) string {
	q, ok := s.state.CurrentQuestion()
	if !ok {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Text))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Border).
		Render("  " + strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")
	return b.String()
}

// renderAdvisory shows the latest coaching text, or a waiting indicator
// while a call is in flight.
func (s *QuizScreen) renderAdvisory(width int) string {
	if s.state.AdvisoryPending {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render(theme.Pending.Render("Coach is thinking...")) + "\n"
	}
	if s.state.AdvisoryText == "" {
		return ""
	}
	text := lipgloss.NewStyle().
		Width(max(width-8, 0)).
		Render(theme.Advisory.Render(s.state.AdvisoryText))
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, text) + "\n"
}

func (s *QuizScreen) renderUnderstanding(width int) string {
	var b strings.Builder
	b.WriteString(s.renderQuestionHeader(width))
	b.WriteString(s.renderOptions(width, "", false))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render("Do you understand what this question is asking?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(theme.Hint.Render("[Y]es, let me answer   [N]o, explain it first")))
	return b.String()
}

func (s *QuizScreen) renderComprehension(width int) string {
	var b strings.Builder
	b.WriteString(s.renderQuestionHeader(width))
	b.WriteString(s.renderAdvisory(width))
	b.WriteString("\n")
	if !s.state.AdvisoryPending {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render(theme.Hint.Render("Press Enter when you're ready to answer")))
	}
	return b.String()
}

func (s *QuizScreen) renderAnswering(width int) string {
	var b strings.Builder
	b.WriteString(s.renderQuestionHeader(width))
	b.WriteString(s.renderOptions(width, s.highlight, false))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(theme.Hint.Render("Pick an option (A-D) and press Enter to submit")))
	return b.String()
}

func (s *QuizScreen) renderConfidence(width int) string {
	q, _ := s.state.CurrentQuestion()
	var b strings.Builder
	b.WriteString(s.renderQuestionHeader(width))
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("You chose %s) %s",
			s.state.SelectedOption, q.Option(s.state.SelectedOption))))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render("How confident are you in that answer?"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.chooser.View()))
	b.WriteString("\n\n")
	b.WriteString(s.renderAdvisory(width))
	return b.String()
}

func (s *QuizScreen) renderDepthCheck(width int) string {
	prompt := "Did you glance over all four options before choosing?"
	if s.depthStep == 1 {
		prompt = "Did you understand all of the options?"
	}

	var b strings.Builder
	b.WriteString(s.renderQuestionHeader(width))
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(prompt))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.chooser.View()))
	b.WriteString("\n\n")
	b.WriteString(s.renderAdvisory(width))
	return b.String()
}

func (s *QuizScreen) renderCorrection(width int) string {
	q, _ := s.state.CurrentQuestion()

	var b strings.Builder
	b.WriteString(s.renderQuestionHeader(width))
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(theme.Incorrect.Render("Not quite.")))
	b.WriteString("\n\n")
	b.WriteString(s.renderOptions(width, "", true))
	if q.Explanation != "" {
		b.WriteString("\n")
		expl := lipgloss.NewStyle().
			Width(max(width-8, 0)).
			Foreground(theme.Text).
			Render(q.Explanation)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, expl))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(theme.Hint.Render("Press Enter to continue")))
	return b.String()
}

func (s *QuizScreen) renderReflection(width int) string {
	var b strings.Builder
	b.WriteString(s.renderQuestionHeader(width))
	if s.state.Outcome != "" {
		verdict := theme.Correct.Render("Correct!")
		if s.state.Outcome == quizpkg.OutcomeIncorrect {
			verdict = theme.Incorrect.Render("Incorrect")
		}
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render(verdict))
		b.WriteString("\n\n")
	}
	b.WriteString(s.renderAdvisory(width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render("What's one thing you'll remember from this question?"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.input.View()))
	return b.String()
}

func (s *QuizScreen) renderScheduler(width int) string {
	var b strings.Builder
	b.WriteString(s.renderQuestionHeader(width))
	b.WriteString(s.renderAdvisory(width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render("How should your review reminder be delivered?"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.chooser.View()))
	return b.String()
}

func (s *QuizScreen) renderOptions(width int, highlight quizpkg.Letter, reveal bool) string {
	q, ok := s.state.CurrentQuestion()
	if !ok {
		return ""
	}
	list := components.OptionList{
		Question:    q,
		Highlighted: highlight,
		Selected:    s.state.SelectedOption,
		Reveal:      reveal,
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, list.View())
}
