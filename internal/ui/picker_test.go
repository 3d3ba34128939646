package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/josephgoksu/todolist/models"
	"github.com/josephgoksu/todolist/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pickerEntries() []store.Entry {
	return []store.Entry{
		{Position: 1, Task: models.NewTask("Bravo", "", models.Date{}, models.PriorityHigh, "")},
		{Position: 3, Task: models.NewTask("Delta", "", models.Date{}, models.PriorityLow, "")},
		{Position: 4, Task: models.NewTask("Echo", "", models.Date{}, "Someday", "")},
	}
}

// press feeds key messages to the model and returns the final state.
func press(t *testing.T, m pickerModel, keys ...tea.KeyMsg) (pickerModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(k)
		m = next.(pickerModel)
	}
	return m, cmd
}

var (
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyJ     = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}
	keyK     = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}}
	keyQ     = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}
)

func TestPicker_ChoosesBackingPosition(t *testing.T) {
	m, cmd := press(t, newPickerModel("Complete which task?", pickerEntries()), keyDown, keyEnter)

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	pos, err := m.result()
	require.NoError(t, err)
	assert.Equal(t, 3, pos)
}

func TestPicker_CursorStaysInBounds(t *testing.T) {
	m, _ := press(t, newPickerModel("", pickerEntries()), keyUp, keyK)
	assert.Equal(t, 0, m.cursor)

	m, _ = press(t, m, keyJ, keyJ, keyJ, keyDown)
	assert.Equal(t, 2, m.cursor)

	m, _ = press(t, m, keyEnter)
	pos, err := m.result()
	require.NoError(t, err)
	assert.Equal(t, 4, pos)
}

func TestPicker_Cancel(t *testing.T) {
	for _, k := range []tea.KeyMsg{keyEsc, keyQ, {Type: tea.KeyCtrlC}} {
		t.Run(k.String(), func(t *testing.T) {
			m, cmd := press(t, newPickerModel("", pickerEntries()), keyDown, k)

			require.NotNil(t, cmd)
			_, err := m.result()
			assert.ErrorIs(t, err, ErrPickerCancelled)
		})
	}
}

func TestPicker_IgnoresOtherMessages(t *testing.T) {
	m := newPickerModel("", pickerEntries())

	next, cmd := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	assert.Nil(t, cmd)
	assert.Equal(t, m, next.(pickerModel))
}

func TestPicker_View(t *testing.T) {
	m, _ := press(t, newPickerModel("Complete which task?", pickerEntries()), keyDown)

	view := m.View()

	assert.Contains(t, view, "Complete which task?")
	assert.Contains(t, view, "▶ ")
	assert.Contains(t, view, "  4  Delta")
	assert.Contains(t, view, "Someday")
	assert.Contains(t, view, "enter select")
}

func TestPickTask_NoEntries(t *testing.T) {
	_, err := PickTask("", nil, nil, nil)
	assert.ErrorIs(t, err, ErrPickerCancelled)
}
