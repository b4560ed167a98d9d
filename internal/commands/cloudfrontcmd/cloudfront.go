// Package cloudfrontcmd wires the CloudFront verbs into the shell.
package cloudfrontcmd

import (
	"awshell/internal/commands"
	"awshell/internal/config"
	"awshell/internal/resources"
	"awshell/internal/session"
)

func init() {
	commands.Register("cloudfront", handle, "CloudFront commands: cloudfront <subcommand> [args]")
	commands.RegisterSubs("cloudfront", subs)
}

var subs = commands.Subcommands{
	"list-distributions":    commands.Fetching(resources.Distributions),
	"describe-distribution": commands.FetchingOne("cloudfront describe-distribution <distribution-id>", resources.Distribution),
	"get-config":            commands.FetchingOne("cloudfront get-config <distribution-id>", resources.Distribution),
}

func handle(args []string, sess *session.Manager, cfg *config.Config) error {
	return commands.DispatchSub("cloudfront", subs, args, sess, cfg)
}
