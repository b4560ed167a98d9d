// Package ssmcmd wires the Systems Manager verbs into the shell.
// get-parameter decrypts SecureString values, so its output is
// sensitive by design.
package ssmcmd

import (
	"awshell/internal/commands"
	"awshell/internal/config"
	"awshell/internal/resources"
	"awshell/internal/session"
)

func init() {
	commands.Register("ssm", handle, "Systems Manager commands: ssm <subcommand> [args]")
	commands.RegisterSubs("ssm", subs)
}

var subs = commands.Subcommands{
	"list-parameters": commands.Fetching(resources.Parameters),
	"get-parameter":   commands.FetchingOne("ssm get-parameter <parameter-name>", resources.Parameter),
	"list-instances":  commands.Fetching(resources.ManagedInstances),
	"get-config":      commands.FetchingOne("ssm get-config <parameter-name>", resources.Parameter),
}

func handle(args []string, sess *session.Manager, cfg *config.Config) error {
	return commands.DispatchSub("ssm", subs, args, sess, cfg)
}
