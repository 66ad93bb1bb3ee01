// Package repl provides the interactive mode for bt-admin.
package repl

import (
	"sort"
	"strings"
)

// Completer provides prefix completion over the command tree.
type Completer struct {
	commands []string
}

// NewCompleter creates a Completer for the given command names.
func NewCompleter(commands []string) *Completer {
	sorted := make([]string, len(commands))
	copy(sorted, commands)
	sort.Strings(sorted)
	return &Completer{commands: sorted}
}

// Commands returns the known command names.
func (c *Completer) Commands() []string {
	return c.commands
}

// Complete returns completion suggestions for the given prefix.
func (c *Completer) Complete(prefix string) []string {
	var suggestions []string
	for _, cmd := range c.commands {
		if strings.HasPrefix(cmd, prefix) {
			suggestions = append(suggestions, cmd)
		}
	}
	return suggestions
}
