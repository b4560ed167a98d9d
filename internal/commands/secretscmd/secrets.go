// Package secretscmd wires the Secrets Manager verbs into the shell.
// Only secret metadata is ever listed; values are never retrieved.
package secretscmd

import (
	"awshell/internal/commands"
	"awshell/internal/config"
	"awshell/internal/resources"
	"awshell/internal/session"
)

func init() {
	commands.Register("secrets", handle, "Secrets Manager commands: secrets <subcommand>")
	commands.RegisterSubs("secrets", subs)
}

var subs = commands.Subcommands{
	"list": commands.Fetching(resources.Secrets),
}

func handle(args []string, sess *session.Manager, cfg *config.Config) error {
	return commands.DispatchSub("secrets", subs, args, sess, cfg)
}
