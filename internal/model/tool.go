package model

import (
	"errors"
	"fmt"
	"strings"
)

// ToolID identifies one of the external refactoring tools.
type ToolID string

const (
	// DisambiguateSymbols prefixes ambiguous symbols with their namespace.
	DisambiguateSymbols ToolID = "disambiguate-symbols"
	// InlineNamespaces removes the versioned inline namespace macros.
	InlineNamespaces ToolID = "inline-namespaces"
)

// ErrUnknownTool is returned when a tool name is not one of the known tools.
var ErrUnknownTool = errors.New("unknown tool")

// Tools lists the known tools in a stable order.
func Tools() []ToolID {
	return []ToolID{DisambiguateSymbols, InlineNamespaces}
}

// ParseToolID validates name against the known tools.
func ParseToolID(name string) (ToolID, error) {
	for _, tool := range Tools() {
		if string(tool) == name {
			return tool, nil
		}
	}

	return "", fmt.Errorf("%w %q (expected one of: %s)", ErrUnknownTool, name, toolNames())
}

func toolNames() string {
	names := make([]string, 0, len(Tools()))
	for _, tool := range Tools() {
		names = append(names, string(tool))
	}

	return strings.Join(names, ", ")
}

// ToolCommand is a fully constructed external tool invocation.
type ToolCommand struct {
	Executable Path
	Args       []string
}

// String renders the command line the way it would be typed in a shell.
func (c ToolCommand) String() string {
	parts := make([]string, 0, len(c.Args)+1)
	parts = append(parts, string(c.Executable))
	parts = append(parts, c.Args...)

	return strings.Join(parts, " ")
}
