package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/josephgoksu/todolist/store"
)

// Panel represents a bordered box with an optional title.
type Panel struct {
	Title       string
	Content     string
	BorderColor lipgloss.Color
	Width       int
}

// NewPanel creates a new panel with default styling.
func NewPanel(title, content string) *Panel {
	return &Panel{
		Title:       title,
		Content:     content,
		BorderColor: ColorSecondary,
	}
}

// WithBorderColor sets the border color and returns the panel.
func (p *Panel) WithBorderColor(color lipgloss.Color) *Panel {
	p.BorderColor = color
	return p
}

// WithWidth sets the panel width and returns the panel.
func (p *Panel) WithWidth(width int) *Panel {
	p.Width = width
	return p
}

// Render returns the styled panel as a string.
func (p *Panel) Render() string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.BorderColor).
		Padding(0, 1)

	if p.Width > 0 {
		style = style.Width(p.Width)
	}

	content := p.Content
	if p.Title != "" {
		content = StyleHeader.Render(p.Title) + "\n" + p.Content
	}
	return style.Render(content)
}

// WrapText word-wraps each line of text to width terminal cells. Words
// longer than width are left whole.
func WrapText(text string, width int) string {
	if width <= 0 {
		return text
	}

	var result strings.Builder
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			result.WriteString("\n")
		}
		if lipgloss.Width(line) <= width {
			result.WriteString(line)
			continue
		}

		current := ""
		for _, word := range strings.Fields(line) {
			switch {
			case current == "":
				current = word
			case lipgloss.Width(current)+1+lipgloss.Width(word) <= width:
				current += " " + word
			default:
				result.WriteString(current + "\n")
				current = word
			}
		}
		result.WriteString(current)
	}
	return result.String()
}

// detailWidth is the content width of the task detail panel.
const detailWidth = 60

// RenderTaskDetail writes one task as a panel, bordered green once complete.
func RenderTaskDetail(w io.Writer, e store.Entry) error {
	task := e.Task

	status := StyleWarning.Render("open")
	border := ColorSecondary
	if task.IsComplete {
		status = StyleSuccess.Render("✓ complete")
		border = ColorSuccess
	}

	due := task.DueDate.String()
	if due == "" {
		due = StyleSubtle.Render("none")
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s\n", StyleSubtle.Render("Status:  "), status)
	fmt.Fprintf(&sb, "%s %s\n", StyleSubtle.Render("Due:     "), due)
	fmt.Fprintf(&sb, "%s %s\n", StyleSubtle.Render("Priority:"), PriorityStyle(task.Priority).Render(string(task.Priority)))
	fmt.Fprintf(&sb, "%s %s", StyleSubtle.Render("Category:"), task.Category)
	if task.Description != "" {
		sb.WriteString("\n\n" + WrapText(task.Description, detailWidth))
	}

	title := fmt.Sprintf("#%d %s", e.Position+1, task.Title)
	_, err := fmt.Fprintln(w, NewPanel(title, sb.String()).WithBorderColor(border).WithWidth(detailWidth+4).Render())
	return err
}
