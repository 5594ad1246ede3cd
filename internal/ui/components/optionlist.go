package components

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/quizmith/quizmith/internal/quiz"
	"github.com/quizmith/quizmith/internal/ui/theme"
)

// OptionList renders the A-D options of a question. Navigation and
// selection are owned by the screen; the component is display-only so
// the session state stays the single source of truth.
type OptionList struct {
	Question quiz.Question

	// Highlighted is the cursor position, by letter. Empty means no cursor.
	Highlighted quiz.Letter

	// Selected is the learner's picked option, by letter. Empty means none.
	Selected quiz.Letter

	// Reveal shows the correct answer and marks the selected option
	// right or wrong. Used after evaluation.
	Reveal bool
}

// View renders the option rows.
func (o OptionList) View() string {
	var s string

	for i, opt := range o.Question.Options {
		letter := quiz.LetterForIndex(i)
		cursor := "  "
		if letter == o.Highlighted && !o.Reveal {
			cursor = "▸ "
		}

		marker := " "
		if letter == o.Selected {
			marker = "●"
		}

		line := fmt.Sprintf("%s%s %s)  %s", cursor, marker, letter, opt)

		switch {
		case o.Reveal && letter == o.Question.Answer:
			s += theme.Correct.Render(line) + "\n"
		case o.Reveal && letter == o.Selected:
			s += theme.Incorrect.Render(line) + "\n"
		case o.Reveal:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		case letter == o.Highlighted || letter == o.Selected:
			s += theme.Selected.Render(line) + "\n"
		default:
			s += theme.Unselected.Render(line) + "\n"
		}
	}

	return s
}
