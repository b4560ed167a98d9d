// Package iamcmd wires the IAM verbs into the shell.
package iamcmd

import (
	"awshell/internal/commands"
	"awshell/internal/config"
	"awshell/internal/resources"
	"awshell/internal/session"
)

func init() {
	commands.Register("iam", handle, "IAM commands: iam <subcommand>")
	commands.RegisterSubs("iam", subs)
}

var subs = commands.Subcommands{
	"list-users":    commands.Fetching(resources.Users),
	"list-roles":    commands.Fetching(resources.Roles),
	"list-policies": commands.Fetching(resources.Policies),
}

func handle(args []string, sess *session.Manager, cfg *config.Config) error {
	return commands.DispatchSub("iam", subs, args, sess, cfg)
}
