// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package command

import (
	"errors"

	"github.com/PasqualeAiello/io-app/args"
	"github.com/PasqualeAiello/io-app/registry"

	tea "github.com/charmbracelet/bubbletea"
)

type Activate struct{}

func (Activate) Name() string        { return "activate" }
func (Activate) Description() string { return "Request the bonus activation" }

// ErrAlreadyRunning is reported when :activate is issued during an attempt
// without --force.
var ErrAlreadyRunning = errors.New("an activation is already running (use --force to restart it)")

func (Activate) Execute(ctx registry.Context, a args.Args) tea.Cmd {
	if ctx.App.ActivationRunning() && !a.Bool("force") {
		return registry.Fail(ErrAlreadyRunning)
	}
	return ctx.App.StartActivation()
}

type Cancel struct{}

func (Cancel) Name() string        { return "cancel" }
func (Cancel) Description() string { return "Cancel the running activation and go back" }

func (Cancel) Execute(ctx registry.Context, a args.Args) tea.Cmd {
	return ctx.App.CancelActivation()
}

type Continue struct{}

func (Continue) Name() string        { return "continue" }
func (Continue) Description() string { return "Leave the activation outcome screen" }

func (Continue) Execute(ctx registry.Context, a args.Args) tea.Cmd {
	return ctx.App.ContinueActivation()
}

type Status struct{}

func (Status) Name() string        { return "status" }
func (Status) Description() string { return "Refresh the activation status panel" }

func (Status) Execute(ctx registry.Context, a args.Args) tea.Cmd {
	return ctx.App.RefreshStatus()
}
