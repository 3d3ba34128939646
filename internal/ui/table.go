package ui

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/josephgoksu/todolist/store"
)

// Table renders rows in a compact fixed-width format for the terminal.
type Table struct {
	Headers  []string
	Rows     [][]string
	MaxWidth int // Max width per column (0 = auto)

	// CellStyle, when set, picks the style for a data cell. Defaults to StyleText.
	CellStyle func(row, col int) lipgloss.Style
}

// ColumnWidths calculates column widths from the headers and content,
// measured in terminal cells.
func (t *Table) ColumnWidths() []int {
	widths := make([]int, len(t.Headers))

	for i, h := range t.Headers {
		widths[i] = lipgloss.Width(h)
	}

	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], lipgloss.Width(cell))
			}
		}
	}

	if t.MaxWidth > 0 {
		for i := range widths {
			widths[i] = min(widths[i], t.MaxWidth)
		}
	}

	return widths
}

// Render outputs the table to a string.
func (t *Table) Render() string {
	if len(t.Headers) == 0 {
		return ""
	}

	widths := t.ColumnWidths()
	var sb strings.Builder

	var headerCells []string
	for i, h := range t.Headers {
		headerCells = append(headerCells, StyleHeader.Render(padRight(h, widths[i])))
	}
	sb.WriteString(" " + strings.Join(headerCells, "  ") + "\n")

	var sepParts []string
	for _, w := range widths {
		sepParts = append(sepParts, StyleSubtle.Render(strings.Repeat("─", w)))
	}
	sb.WriteString(" " + strings.Join(sepParts, "──") + "\n")

	for r, row := range t.Rows {
		var cells []string
		for i := range t.Headers {
			val := ""
			if i < len(row) {
				val = row[i]
			}
			style := StyleText
			if t.CellStyle != nil {
				style = t.CellStyle(r, i)
			}
			cells = append(cells, style.Render(padRight(truncate(val, widths[i]), widths[i])))
		}
		sb.WriteString(" " + strings.Join(cells, "  ") + "\n")
	}

	return sb.String()
}

// Column indexes used by RenderTasks.
const (
	colPosition = iota
	colDone
	colTitle
	colDue
	colPriority
	colCategory
	colDescription
)

// TaskColumnWidth caps the width of every task table column.
const TaskColumnWidth = 40

// RenderTasks writes entries as a table. The # column shows the 1-based
// backing position, which is what the CLI accepts as a task number.
func RenderTasks(w io.Writer, entries []store.Entry) error {
	table := &Table{
		Headers:  []string{"#", "✓", "Title", "Due", "Priority", "Category", "Description"},
		MaxWidth: TaskColumnWidth,
	}

	for _, e := range entries {
		done := " "
		if e.Task.IsComplete {
			done = "✓"
		}
		table.Rows = append(table.Rows, []string{
			strconv.Itoa(e.Position + 1),
			done,
			singleLine(e.Task.Title),
			e.Task.DueDate.String(),
			singleLine(string(e.Task.Priority)),
			singleLine(e.Task.Category),
			singleLine(e.Task.Description),
		})
	}

	table.CellStyle = func(row, col int) lipgloss.Style {
		task := entries[row].Task
		switch {
		case col == colPriority:
			return PriorityStyle(task.Priority)
		case col == colDone && task.IsComplete:
			return StyleSuccess
		case col == colTitle && task.IsComplete:
			return StyleDone
		case col == colPosition:
			return StyleSubtle
		default:
			return StyleText
		}
	}

	_, err := fmt.Fprint(w, table.Render())
	return err
}

// padRight pads a string to the specified width in terminal cells.
func padRight(s string, width int) string {
	if n := lipgloss.Width(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

// truncate cuts s to width terminal cells, marking the cut with "…".
func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	if width <= 0 {
		return ""
	}
	if width == 1 {
		return "…"
	}

	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}

func singleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
