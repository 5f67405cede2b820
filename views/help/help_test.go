package helpview

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestHelpListsCommands(t *testing.T) {
	m := New(60, 10, []CommandInfo{
		{Name: "activate", Description: "Start a bonus activation"},
		{Name: "cancel", Description: "Cancel the running activation"},
	})

	out := m.View()
	assert.Contains(t, out, "Available Commands")
	assert.Contains(t, out, ":activate")
	assert.Contains(t, out, "Cancel the running activation")
	assert.Equal(t, ViewName, m.Name())
}

func TestHelpResizes(t *testing.T) {
	m := New(60, 10, nil)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	assert.Equal(t, 96, m.Viewable.Width)
	assert.Equal(t, 36, m.Viewable.Height)
}
