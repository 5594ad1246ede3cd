package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/quizmith/quizmith/internal/ui/theme"
)

// Chooser is a horizontal row of labeled choices navigated with
// left/right. Enter reports the picked index via the Picked flag; the
// owning screen reads it and resets the component.
type Chooser struct {
	Labels   []string
	Selected int
	Picked   bool
}

// NewChooser creates a chooser over the given labels.
func NewChooser(labels ...string) Chooser {
	return Chooser{Labels: labels}
}

// Init returns nil.
func (c Chooser) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation.
func (c Chooser) Update(msg tea.Msg) (Chooser, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "left", "h":
		if c.Selected > 0 {
			c.Selected--
		}
	case "right", "l":
		if c.Selected < len(c.Labels)-1 {
			c.Selected++
		}
	case "enter":
		c.Picked = true
	}

	return c, nil
}

// Reset clears the picked flag and cursor for reuse.
func (c *Chooser) Reset() {
	c.Selected = 0
	c.Picked = false
}

// View renders the choice row.
func (c Chooser) View() string {
	parts := make([]string, 0, len(c.Labels))
	for i, label := range c.Labels {
		if i == c.Selected {
			parts = append(parts, theme.ButtonActive.Render(" "+label+" "))
		} else {
			parts = append(parts, theme.ButtonInactive.Render(" "+label+" "))
		}
	}
	return strings.Join(parts, "  ")
}
