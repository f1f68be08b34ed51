package components

import (
	"fmt"
	"strconv"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/animalquiz/internal/ui/theme"
)

// Choices is a numbered single-choice list. Options can be picked with
// arrows + Enter or directly by number.
type Choices struct {
	Options  []string
	Selected int
	Chosen   int // -1 until a choice is made
}

// NewChoices creates a choice list with the cursor on the first option.
func NewChoices(options []string) Choices {
	return Choices{
		Options: options,
		Chosen:  -1,
	}
}

// Done reports whether an option has been chosen.
func (c Choices) Done() bool {
	return c.Chosen >= 0
}

// Update handles keyboard navigation and selection. Once an option is
// chosen further input is ignored.
func (c Choices) Update(msg tea.Msg) (Choices, tea.Cmd) {
	if c.Done() {
		return c, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch {
	case key.Matches(kmsg, DefaultKeyMap.Up):
		if c.Selected > 0 {
			c.Selected--
		}
	case key.Matches(kmsg, DefaultKeyMap.Down):
		if c.Selected < len(c.Options)-1 {
			c.Selected++
		}
	case key.Matches(kmsg, DefaultKeyMap.Select):
		if len(c.Options) > 0 {
			c.Chosen = c.Selected
		}
	default:
		if n, err := strconv.Atoi(kmsg.String()); err == nil && n >= 1 && n <= len(c.Options) {
			c.Selected = n - 1
			c.Chosen = c.Selected
		}
	}

	return c, nil
}

// View renders the list.
func (c Choices) View() string {
	var b strings.Builder
	for i, opt := range c.Options {
		prefix := "  "
		if i == c.Selected {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d)  %s", prefix, i+1, opt)

		if i == c.Selected {
			b.WriteString(theme.Selected.Render(line))
		} else {
			b.WriteString(theme.Unselected.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}
