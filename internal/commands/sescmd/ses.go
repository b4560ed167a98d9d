// Package sescmd wires the SES verbs into the shell.
package sescmd

import (
	"awshell/internal/commands"
	"awshell/internal/config"
	"awshell/internal/resources"
	"awshell/internal/session"
)

func init() {
	commands.Register("ses", handle, "SES commands: ses <subcommand> [args]")
	commands.RegisterSubs("ses", subs)
}

var subs = commands.Subcommands{
	"list-identities":         commands.Fetching(resources.EmailIdentities),
	"get-send-quota":          commands.Fetching(resources.SendQuota),
	"list-configuration-sets": commands.Fetching(resources.ConfigurationSets),
	"get-config":              commands.FetchingOne("ses get-config <email-identity>", resources.EmailIdentity),
}

func handle(args []string, sess *session.Manager, cfg *config.Config) error {
	return commands.DispatchSub("ses", subs, args, sess, cfg)
}
