package registry

import (
	"sort"
	"strings"

	"github.com/PasqualeAiello/io-app/args"

	tea "github.com/charmbracelet/bubbletea"
)

// Controller is what commands may ask of the running app.
type Controller interface {
	StartActivation() tea.Cmd
	CancelActivation() tea.Cmd
	ContinueActivation() tea.Cmd
	RefreshStatus() tea.Cmd
	ActivationRunning() bool
}

// ErrorMsg is returned by commands that fail; the app shows it in the
// command bar.
type ErrorMsg struct {
	Err error
}

// Fail returns a command reporting err.
func Fail(err error) tea.Cmd {
	return func() tea.Msg { return ErrorMsg{Err: err} }
}

type Context struct {
	App Controller
}

type Command interface {
	Name() string
	Description() string
	Execute(ctx Context, args args.Args) tea.Cmd
}

var apiRegistry = map[string]Command{}

// Register a new command (called from the command packages' init)
func Register(cmd Command) {
	apiRegistry[cmd.Name()] = cmd
}

// Get returns a command by name
func Get(name string) (Command, bool) {
	cmd, ok := apiRegistry[name]
	return cmd, ok
}

// All returns all registered commands sorted by name
func All() []Command {
	cmds := make([]Command, 0, len(apiRegistry))
	for _, c := range apiRegistry {
		cmds = append(cmds, c)
	}
	sort.Slice(cmds, func(i, j int) bool { return cmds[i].Name() < cmds[j].Name() })
	return cmds
}

// Suggest returns all command names that start with a given prefix
func Suggest(prefix string) []string {
	prefix = strings.TrimSpace(prefix)
	var out []string
	for name := range apiRegistry {
		if prefix == "" || strings.HasPrefix(name, prefix) {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}
