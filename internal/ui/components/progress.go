package components

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/animalquiz/internal/ui/theme"
)

// ProgressBar displays a horizontal bar with an optional label and count.
type ProgressBar struct {
	Label      string
	LabelWidth int // pad label to this width so stacked bars line up
	Value      int
	Max        int
	Width      int
	Fill       color.Color
}

// NewProgressBar creates a bar showing value out of max.
func NewProgressBar(label string, value, max, width int) ProgressBar {
	return ProgressBar{
		Label: label,
		Value: value,
		Max:   max,
		Width: width,
		Fill:  theme.Secondary,
	}
}

// Fraction returns Value/Max clamped to [0, 1].
func (p ProgressBar) Fraction() float64 {
	if p.Max <= 0 {
		return 0
	}
	f := float64(p.Value) / float64(p.Max)
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var result string

	if p.Label != "" {
		label := p.Label
		if pad := p.LabelWidth - lipgloss.Width(label); pad > 0 {
			label += strings.Repeat(" ", pad)
		}
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(label) + "  "
	}

	count := fmt.Sprintf("  %d/%d", p.Value, p.Max)

	barWidth := p.Width - lipgloss.Width(result) - len(count)
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * p.Fraction())
	empty := barWidth - filled

	result += lipgloss.NewStyle().Background(p.Fill).Render(strings.Repeat(" ", filled))
	result += lipgloss.NewStyle().Background(theme.Border).Render(strings.Repeat(" ", empty))
	result += lipgloss.NewStyle().Foreground(theme.TextDim).Render(count)

	return result
}
