package ui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/josephgoksu/todolist/store"
	"golang.org/x/term"
)

// ErrPickerCancelled is returned when the user leaves the picker without choosing.
var ErrPickerCancelled = errors.New("selection cancelled")

type pickerKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Choose key.Binding
	Quit   key.Binding
}

var pickerKeys = pickerKeyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Choose: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
	Quit:   key.NewBinding(key.WithKeys("esc", "q", "ctrl+c"), key.WithHelp("esc", "cancel")),
}

// pickerModel lists task entries and remembers which one was chosen.
type pickerModel struct {
	title    string
	entries  []store.Entry
	cursor   int
	selected int
	quit     bool
}

func newPickerModel(title string, entries []store.Entry) pickerModel {
	return pickerModel{title: title, entries: entries, selected: -1}
}

func (m pickerModel) Init() tea.Cmd {
	return nil
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, pickerKeys.Quit):
		m.quit = true
		return m, tea.Quit
	case key.Matches(keyMsg, pickerKeys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, pickerKeys.Down):
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, pickerKeys.Choose):
		if len(m.entries) > 0 {
			m.selected = m.entries[m.cursor].Position
		}
		return m, tea.Quit
	}
	return m, nil
}

func (m pickerModel) View() string {
	var sb strings.Builder
	sb.WriteString("\n" + StyleSelectTitle.Render(m.title) + "\n\n")

	for i, e := range m.entries {
		cursor := "  "
		style := StyleSelectNormal
		if m.cursor == i {
			cursor = "▶ "
			style = StyleSelectActive
		}

		line := cursor + style.Render(fmt.Sprintf("%3d  %s", e.Position+1, e.Task.Title))
		if due := e.Task.DueDate.String(); due != "" {
			line += StyleSelectDim.Render("  due " + due)
		}
		line += "  " + PriorityStyle(e.Task.Priority).Render(string(e.Task.Priority))
		sb.WriteString(line + "\n")
	}

	help := []string{}
	for _, b := range []key.Binding{pickerKeys.Up, pickerKeys.Down, pickerKeys.Choose, pickerKeys.Quit} {
		h := b.Help()
		help = append(help, h.Key+" "+h.Desc)
	}
	sb.WriteString("\n" + StyleSelectDim.Render(strings.Join(help, " • ")) + "\n")
	return sb.String()
}

// result returns the chosen backing position.
func (m pickerModel) result() (int, error) {
	if m.quit || m.selected < 0 {
		return -1, ErrPickerCancelled
	}
	return m.selected, nil
}

// PickTask shows entries in an interactive list and returns the backing
// position of the one the user chose, or ErrPickerCancelled.
func PickTask(title string, entries []store.Entry, in io.Reader, out io.Writer) (int, error) {
	if len(entries) == 0 {
		return -1, ErrPickerCancelled
	}

	p := tea.NewProgram(newPickerModel(title, entries), tea.WithInput(in), tea.WithOutput(out))
	finalModel, err := p.Run()
	if err != nil {
		return -1, fmt.Errorf("error running task picker: %w", err)
	}
	return finalModel.(pickerModel).result()
}

// IsInteractive reports whether both stdin and stdout are terminals.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
