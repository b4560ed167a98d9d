// Package rdscmd wires the RDS verbs into the shell.
package rdscmd

import (
	"awshell/internal/commands"
	"awshell/internal/config"
	"awshell/internal/resources"
	"awshell/internal/session"
)

func init() {
	commands.Register("rds", handle, "RDS commands: rds <subcommand>")
	commands.RegisterSubs("rds", subs)
}

var subs = commands.Subcommands{
	"list-instances": commands.Fetching(resources.DBInstances),
	"list-clusters":  commands.Fetching(resources.DBClusters),
}

func handle(args []string, sess *session.Manager, cfg *config.Config) error {
	return commands.DispatchSub("rds", subs, args, sess, cfg)
}
