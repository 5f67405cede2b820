package args

import (
	"fmt"
	"strconv"
)

// Args holds both positional arguments and flag values of a command bar
// invocation.
type Args struct {
	Positionals []string
	Flags       map[string]string
}

// Get returns the string value of a flag or empty string if not present.
func (a *Args) Get(name string) string {
	return a.Flags[name]
}

// Has returns true if a flag was provided.
func (a *Args) Has(name string) bool {
	_, ok := a.Flags[name]
	return ok
}

// Bool reports a boolean flag; a bare --flag counts as true.
func (a *Args) Bool(name string) bool {
	v, ok := a.Flags[name]
	if !ok {
		return false
	}
	b, err := strconv.ParseBool(v)
	return err == nil && b
}

// String provides a debug-friendly representation.
func (a Args) String() string {
	return fmt.Sprintf("Args{Positionals=%v, Flags=%v}", a.Positionals, a.Flags)
}
