package ui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/josephgoksu/todolist/models"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestStyles(t *testing.T) {
	// Force color profile for testing
	lipgloss.SetColorProfile(termenv.ANSI256)
	t.Cleanup(func() { lipgloss.SetColorProfile(termenv.Ascii) })

	out := StyleSuccess.Render("Test")
	assert.Contains(t, out, "Test")
	assert.NotEqual(t, "Test", out, "Style should add ANSI codes when forced")
}

func TestIcon(t *testing.T) {
	lipgloss.SetColorProfile(termenv.ANSI256)
	t.Cleanup(func() { lipgloss.SetColorProfile(termenv.Ascii) })

	icon := "✓"
	out := Icon(icon, StyleSuccess)
	assert.Contains(t, out, icon)
	assert.NotEqual(t, icon, out)
}

func TestPriorityStyle(t *testing.T) {
	tests := []struct {
		priority models.TaskPriority
		want     lipgloss.Style
	}{
		{models.PriorityHigh, StylePriorityHigh},
		{models.PriorityMedium, StylePriorityMedium},
		{models.PriorityLow, StylePriorityLow},
		{"Someday", StylePriorityUnranked},
		{"high", StylePriorityUnranked},
	}

	for _, tt := range tests {
		t.Run(string(tt.priority), func(t *testing.T) {
			got := PriorityStyle(tt.priority)
			assert.Equal(t, tt.want.GetForeground(), got.GetForeground())
			assert.Equal(t, tt.want.GetBold(), got.GetBold())
			assert.Equal(t, tt.want.GetItalic(), got.GetItalic())
		})
	}
}
