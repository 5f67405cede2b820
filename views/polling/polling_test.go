package polling

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

type counted struct{ N int }

type countedMsg struct{ N int }

func TestPollerEmitsOnlyOnChange(t *testing.T) {
	value := counted{N: 1}
	p := New(func() (counted, error) { return value, nil }, func(c counted) tea.Msg { return countedMsg(c) })

	require.Equal(t, countedMsg{N: 1}, p.Check())
	require.Nil(t, p.Check(), "unchanged value must not emit")

	value.N = 2
	require.Equal(t, countedMsg{N: 2}, p.Check())
	require.NotEmpty(t, p.LastFingerprint())
}

func TestPollerSkipsLoadErrors(t *testing.T) {
	p := New(func() (counted, error) { return counted{}, errors.New("boom") }, func(c counted) tea.Msg { return countedMsg(c) })
	require.Nil(t, p.Check())
	require.Empty(t, p.LastFingerprint())
}

func TestCheckCmdDoesNotReschedule(t *testing.T) {
	p := New(func() (counted, error) { return counted{N: 7}, nil }, func(c counted) tea.Msg { return countedMsg(c) })
	require.Equal(t, countedMsg{N: 7}, p.CheckCmd()())
	require.Nil(t, p.CheckCmd()())
}
