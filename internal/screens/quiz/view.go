package quiz

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/animalquiz/internal/ui/components"
	"github.com/abhisek/animalquiz/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Render(theme.Warning.Render("Something went wrong") + "\n\n" +
				lipgloss.NewStyle().Foreground(theme.TextDim).Render(s.errMsg) + "\n\n" +
				theme.Hint.Render("Press Ctrl+C to quit"))
	}

	q, ok := s.session.Current()
	if !ok {
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Quiz complete.")
	}

	p := s.session.Progress()
	barWidth := min(width-8, 50)

	var b strings.Builder

	bar := components.NewProgressBar("Progress", p.Answered, p.Total, barWidth)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	b.WriteString(theme.Body.
		Width(width).
		Align(lipgloss.Center).
		Bold(true).
		Render(q.Prompt))
	b.WriteString("\n\n")

	// Left-align options within a centered block so the numbers line up.
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.choices.View()))

	return lipgloss.PlaceVertical(height, lipgloss.Center, b.String())
}
