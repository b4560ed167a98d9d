// Package helpcmd implements the help verb.
package helpcmd

import (
	"fmt"

	"awshell/internal/commands"
	"awshell/internal/config"
	"awshell/internal/output"
	"awshell/internal/session"
)

func init() {
	commands.Register("help", help, "Show available commands: help [command]")
}

func help(args []string, sess *session.Manager, cfg *config.Config) error {
	if len(args) > 0 {
		entry, ok := commands.Default().Get(args[0])
		if !ok {
			return fmt.Errorf("no such command %q", args[0])
		}
		output.Bold(entry.Name)
		output.Println("  " + entry.Help)
		return nil
	}

	output.Bold("Available commands:")
	for _, entry := range commands.Default().Entries() {
		output.Printf("  %-16s %s\n", entry.Name, entry.Help)
	}
	output.Dim("\nquery mode evaluates chained expressions like instances().where(\"State.Name\", \"running\")")
	return nil
}
