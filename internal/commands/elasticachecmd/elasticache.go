// Package elasticachecmd wires the ElastiCache verbs into the shell.
package elasticachecmd

import (
	"awshell/internal/commands"
	"awshell/internal/config"
	"awshell/internal/resources"
	"awshell/internal/session"
)

func init() {
	commands.Register("elasticache", handle, "ElastiCache commands: elasticache <subcommand> [args]")
	commands.RegisterSubs("elasticache", subs)
}

var subs = commands.Subcommands{
	"list-clusters":           commands.Fetching(resources.CacheClusters),
	"describe-cluster":        commands.FetchingOne("elasticache describe-cluster <cluster-id>", resources.CacheCluster),
	"list-replication-groups": commands.Fetching(resources.ReplicationGroups),
	"get-config":              commands.FetchingOne("elasticache get-config <cluster-id>", resources.CacheCluster),
}

func handle(args []string, sess *session.Manager, cfg *config.Config) error {
	return commands.DispatchSub("elasticache", subs, args, sess, cfg)
}
