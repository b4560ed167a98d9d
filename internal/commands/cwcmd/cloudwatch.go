// Package cwcmd wires the CloudWatch verbs into the shell.
package cwcmd

import (
	"awshell/internal/commands"
	"awshell/internal/config"
	"awshell/internal/resources"
	"awshell/internal/session"
)

func init() {
	commands.Register("cloudwatch", handle, "CloudWatch commands: cloudwatch <subcommand>")
	commands.RegisterSubs("cloudwatch", subs)
}

var subs = commands.Subcommands{
	"list-alarms":     commands.Fetching(resources.Alarms),
	"list-log-groups": commands.Fetching(resources.LogGroups),
}

func handle(args []string, sess *session.Manager, cfg *config.Config) error {
	return commands.DispatchSub("cloudwatch", subs, args, sess, cfg)
}
