// Package cognitocmd wires the Cognito user pool verbs into the shell.
package cognitocmd

import (
	"awshell/internal/commands"
	"awshell/internal/config"
	"awshell/internal/resources"
	"awshell/internal/session"
)

func init() {
	commands.Register("cognito", handle, "Cognito commands: cognito <subcommand> [args]")
	commands.RegisterSubs("cognito", subs)
}

var subs = commands.Subcommands{
	"list-user-pools":    commands.Fetching(resources.UserPools),
	"describe-user-pool": commands.FetchingOne("cognito describe-user-pool <pool-id>", resources.UserPool),
	"list-users":         commands.FetchingTable("cognito list-users <pool-id>", resources.PoolUsers),
	"get-config":         commands.FetchingOne("cognito get-config <pool-id>", resources.UserPool),
}

func handle(args []string, sess *session.Manager, cfg *config.Config) error {
	return commands.DispatchSub("cognito", subs, args, sess, cfg)
}
