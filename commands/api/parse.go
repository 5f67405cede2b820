package api

import (
	"strings"

	"github.com/PasqualeAiello/io-app/args"
	"github.com/PasqualeAiello/io-app/registry"
)

// ParseInput takes a full input string like:
// "activate --locale=en"
// It returns the matching Command and parsed Args.
func ParseInput(input string) (registry.Command, args.Args, error) {
	input = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(input), ":"))
	if input == "" {
		return nil, args.Args{}, ErrEmptyCommand
	}

	parts := strings.Fields(input)

	// Find longest matching command name
	var cmd registry.Command
	var ok bool
	for i := len(parts); i > 0; i-- {
		tryName := strings.Join(parts[:i], " ")
		if c, found := registry.Get(tryName); found {
			cmd = c
			ok = true
			parts = parts[i:] // remaining = args + flags
			break
		}
	}

	if !ok {
		return nil, args.Args{}, ErrUnknownCommand(input)
	}

	return cmd, parseArgs(parts), nil
}

// parseArgs separates flags (--flag or --flag=value) from positionals.
func parseArgs(parts []string) args.Args {
	a := args.Args{
		Flags:       make(map[string]string),
		Positionals: []string{},
	}

	for _, p := range parts {
		if strings.HasPrefix(p, "--") {
			p = strings.TrimPrefix(p, "--")
			if eq := strings.Index(p, "="); eq != -1 {
				a.Flags[p[:eq]] = p[eq+1:]
			} else {
				a.Flags[p] = "true"
			}
		} else {
			a.Positionals = append(a.Positionals, p)
		}
	}

	return a
}
