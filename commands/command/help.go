package command

import (
	"github.com/PasqualeAiello/io-app/args"
	"github.com/PasqualeAiello/io-app/registry"
	"github.com/PasqualeAiello/io-app/views/view"

	tea "github.com/charmbracelet/bubbletea"
)

type Help struct{}

func (Help) Name() string        { return "help" }
func (Help) Description() string { return "Show all available commands" }

func (Help) Execute(ctx registry.Context, a args.Args) tea.Cmd {
	return view.NavigateTo(view.NameHelp, nil)
}
