package ui

import (
	"bytes"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/stretchr/testify/assert"
	"github.com/vittascience/blockly/internal/config"
	"github.com/vittascience/blockly/internal/field"
)

func TestWorkspace_ToggleSelectedField(t *testing.T) {
	tm := teatest.NewTestModel(t, New(config.Default()), teatest.WithInitialTermSize(80, 24))

	teatest.WaitFor(t, tm.Output(), func(bts []byte) bool {
		return bytes.Contains(bts, []byte("workspace"))
	})

	tm.Send(tea.KeyMsg{Type: tea.KeySpace})
	teatest.WaitFor(t, tm.Output(), func(bts []byte) bool {
		return bytes.Contains(bts, []byte("last change: b1.ENABLED"))
	})

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	tm.WaitFinished(t, teatest.WithFinalTimeout(time.Second))
}

func TestWorkspace_CursorMoves(t *testing.T) {
	m := New(config.Default())

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(Model)
	assert.Equal(t, 1, m.cursor)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(Model)
	assert.Equal(t, 0, m.cursor)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(Model)
	assert.Equal(t, 0, m.cursor)
}

func TestWorkspace_ToggleUpdatesField(t *testing.T) {
	m := New(config.Default())

	first := m.entries[0]
	assert.Equal(t, field.True, first.block.Field(first.name).Read())

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeySpace})
	m = next.(Model)
	assert.Equal(t, field.False, first.block.Field(first.name).Read())
	assert.Len(t, *m.changes, 1)
}
