package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

func TestIsTooSmall(t *testing.T) {
	tests := []struct {
		w, h int
		want bool
	}{
		{60, 20, false},
		{59, 20, true},
		{60, 19, true},
		{120, 40, false},
	}
	for _, tt := range tests {
		if got := IsTooSmall(tt.w, tt.h); got != tt.want {
			t.Errorf("IsTooSmall(%d, %d) = %v, want %v", tt.w, tt.h, got, tt.want)
		}
	}
}

func TestRenderHeader_ContainsParts(t *testing.T) {
	h := RenderHeader("Question", "2/5", 80)
	for _, want := range []string{"Animal Quiz", "Question", "2/5"} {
		if !strings.Contains(h, want) {
			t.Errorf("header missing %q", want)
		}
	}
}

func TestRenderFrame_FillsHeight(t *testing.T) {
	header := RenderHeader("t", "", 80)
	footer := RenderFooter([]KeyHint{{Key: "Enter", Description: "Select"}}, 80)
	frame := RenderFrame(header, "body", footer, 80, 24)

	if got := lipgloss.Height(frame); got != 24 {
		t.Errorf("frame height = %d, want 24", got)
	}
}
