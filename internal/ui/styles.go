package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/josephgoksu/todolist/models"
)

var (
	// Colors
	ColorPrimary   = lipgloss.Color("205") // Pink
	ColorSecondary = lipgloss.Color("241") // Gray
	ColorSuccess   = lipgloss.Color("42")  // Green
	ColorError     = lipgloss.Color("160") // Red
	ColorWarning   = lipgloss.Color("214") // Orange/Yellow
	ColorText      = lipgloss.Color("252") // White/Gray
	ColorBlue      = lipgloss.Color("75")

	// Base Styles
	StyleTitle   = lipgloss.NewStyle().Foreground(ColorText).Bold(true)
	StyleSubtle  = lipgloss.NewStyle().Foreground(ColorSecondary)
	StyleSuccess = lipgloss.NewStyle().Foreground(ColorSuccess)
	StyleError   = lipgloss.NewStyle().Foreground(ColorError)
	StyleWarning = lipgloss.NewStyle().Foreground(ColorWarning)
	StyleText    = lipgloss.NewStyle().Foreground(ColorText)

	StyleHeader = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	// Completed tasks are dimmed in tables
	StyleDone = lipgloss.NewStyle().Foreground(ColorSecondary).Strikethrough(true)

	// Picker
	StyleSelectTitle  = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	StyleSelectActive = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	StyleSelectNormal = lipgloss.NewStyle().Foreground(ColorText)
	StyleSelectDim    = lipgloss.NewStyle().Foreground(ColorSecondary)

	// Priorities, indexed by rank
	StylePriorityHigh     = lipgloss.NewStyle().Foreground(ColorError).Bold(true)
	StylePriorityMedium   = lipgloss.NewStyle().Foreground(ColorWarning)
	StylePriorityLow      = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePriorityUnranked = lipgloss.NewStyle().Foreground(ColorSecondary).Italic(true)
)

// PriorityStyle returns the style for a priority label.
func PriorityStyle(p models.TaskPriority) lipgloss.Style {
	switch p.Rank() {
	case models.PriorityHigh.Rank():
		return StylePriorityHigh
	case models.PriorityMedium.Rank():
		return StylePriorityMedium
	case models.PriorityLow.Rank():
		return StylePriorityLow
	default:
		return StylePriorityUnranked
	}
}

// Icon returns a styled icon string
func Icon(icon string, style lipgloss.Style) string {
	return style.Render(icon)
}
