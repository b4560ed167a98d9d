// Package route53cmd wires the Route 53 verbs into the shell.
package route53cmd

import (
	"awshell/internal/commands"
	"awshell/internal/config"
	"awshell/internal/resources"
	"awshell/internal/session"
)

func init() {
	commands.Register("route53", handle, "Route 53 commands: route53 <subcommand> [args]")
	commands.RegisterSubs("route53", subs)
}

var subs = commands.Subcommands{
	"list-hosted-zones": commands.Fetching(resources.HostedZones),
	"list-records":      commands.FetchingTable("route53 list-records <hosted-zone-id>", resources.DNSRecords),
	"get-config":        commands.FetchingOne("route53 get-config <zone-id>", resources.HostedZone),
}

func handle(args []string, sess *session.Manager, cfg *config.Config) error {
	return commands.DispatchSub("route53", subs, args, sess, cfg)
}
