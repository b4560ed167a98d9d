// Package ssocmd wires the IAM Identity Center verbs into the shell.
package ssocmd

import (
	"awshell/internal/commands"
	"awshell/internal/config"
	"awshell/internal/resources"
	"awshell/internal/session"
)

func init() {
	commands.Register("sso", handle, "SSO Admin commands: sso <subcommand> [args]")
	commands.RegisterSubs("sso", subs)
}

var subs = commands.Subcommands{
	"list-instances":       commands.Fetching(resources.SSOInstances),
	"list-permission-sets": commands.FetchingTable("sso list-permission-sets <instance-arn>", resources.PermissionSets),
	"get-config":           commands.FetchingOne("sso get-config <instance-arn>", resources.PermissionSets),
}

func handle(args []string, sess *session.Manager, cfg *config.Config) error {
	return commands.DispatchSub("sso", subs, args, sess, cfg)
}
