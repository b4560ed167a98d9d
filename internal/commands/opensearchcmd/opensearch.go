// Package opensearchcmd wires the OpenSearch verbs into the shell.
package opensearchcmd

import (
	"awshell/internal/commands"
	"awshell/internal/config"
	"awshell/internal/resources"
	"awshell/internal/session"
)

func init() {
	commands.Register("opensearch", handle, "OpenSearch commands: opensearch <subcommand> [args]")
	commands.RegisterSubs("opensearch", subs)
}

var subs = commands.Subcommands{
	"list-domains":    commands.Fetching(resources.Domains),
	"describe-domain": commands.FetchingOne("opensearch describe-domain <domain-name>", resources.Domain),
	"get-config":      commands.FetchingOne("opensearch get-config <domain-name>", resources.Domain),
}

func handle(args []string, sess *session.Manager, cfg *config.Config) error {
	return commands.DispatchSub("opensearch", subs, args, sess, cfg)
}
