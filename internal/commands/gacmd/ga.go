// Package gacmd wires the Global Accelerator verbs into the shell.
package gacmd

import (
	"awshell/internal/commands"
	"awshell/internal/config"
	"awshell/internal/resources"
	"awshell/internal/session"
)

func init() {
	commands.Register("ga", handle, "Global Accelerator commands: ga <subcommand> [args]")
	commands.RegisterSubs("ga", subs)
}

var subs = commands.Subcommands{
	"list-accelerators":    commands.Fetching(resources.Accelerators),
	"describe-accelerator": commands.FetchingOne("ga describe-accelerator <accelerator-arn>", resources.Accelerator),
	"get-config":           commands.FetchingOne("ga get-config <accelerator-arn>", resources.Accelerator),
}

func handle(args []string, sess *session.Manager, cfg *config.Config) error {
	return commands.DispatchSub("ga", subs, args, sess, cfg)
}
