// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package statusview

import (
	"time"

	"github.com/PasqualeAiello/io-app/activation"
	"github.com/PasqualeAiello/io-app/views/polling"

	tea "github.com/charmbracelet/bubbletea"
)

// Info is what the status panel shows about the running client.
type Info struct {
	Backend string
	Locale  string
	Active  bool
	Kind    activation.Kind
	Status  activation.Status
	Err     string
	Seq     uint64
	Updated time.Time
	History []string
}

// Source reads the current Info.
type Source func() (Info, error)

type Model struct {
	version string
	info    Info
	poller  *polling.Poller[Info]
	spinner int
	now     func() time.Time
}

// Create a new instance
func New(version string, source Source) *Model {
	m := &Model{
		version: version,
		now:     time.Now,
	}
	m.poller = polling.New(source, func(i Info) tea.Msg { return Msg{Info: i} })
	return m
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.poller.CheckCmd(), m.poller.TickCmd(), m.spinnerTickCmd())
}

func (m *Model) spinnerTickCmd() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(t time.Time) tea.Msg {
		return SpinnerTickMsg(t)
	})
}

// Info returns the last Info received.
func (m *Model) Info() Info { return m.info }

// Refresh reads the source right away, skipping the wait for the next tick.
func (m *Model) Refresh() tea.Cmd {
	return m.poller.CheckCmd()
}
