package commands

import (
	"sort"
	"strings"

	"awshell/internal/config"
	"awshell/internal/output"
	"awshell/internal/session"
)

// Subcommands maps a service verb's subcommand names to handlers, e.g.
// "ec2 list-instances" where "list-instances" is the subcommand.
type Subcommands map[string]Handler

// DispatchSub routes a service command's first argument to a subcommand.
// Missing or unknown subcommands print usage; neither is an error.
func DispatchSub(service string, subs Subcommands, args []string, sess *session.Manager, cfg *config.Config) error {
	available := subcommandNames(subs)

	if len(args) == 0 {
		output.Warning("Usage: " + service + " <subcommand>")
		output.Println("Available subcommands: " + available)
		output.Dim("Type 'help " + service + "' for details.")
		return nil
	}

	name := strings.ToLower(args[0])
	handler, ok := subs[name]
	if !ok {
		output.Errorf("Unknown subcommand: %s %s", service, name)
		output.Println("Available: " + available)
		return nil
	}
	return handler(args[1:], sess, cfg)
}

// Names returns the subcommand names, sorted.
func (s Subcommands) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func subcommandNames(subs Subcommands) string {
	return strings.Join(subs.Names(), ", ")
}
