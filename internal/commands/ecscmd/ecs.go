// Package ecscmd wires the ECS verbs into the shell.
package ecscmd

import (
	"awshell/internal/commands"
	"awshell/internal/config"
	"awshell/internal/resources"
	"awshell/internal/session"
)

func init() {
	commands.Register("ecs", handle, "ECS commands: ecs <subcommand> [args]")
	commands.RegisterSubs("ecs", subs)
}

var subs = commands.Subcommands{
	"list-clusters":    commands.Fetching(resources.ECSClusters),
	"describe-cluster": commands.FetchingOne("ecs describe-cluster <cluster-name>", resources.ECSCluster),
	"list-services":    commands.FetchingTable("ecs list-services <cluster-name>", resources.ECSServices),
	"list-tasks":       commands.FetchingTable("ecs list-tasks <cluster-name>", resources.ECSTasks),
	"get-config":       commands.FetchingOne("ecs get-config <cluster-name>", resources.ECSCluster),
}

func handle(args []string, sess *session.Manager, cfg *config.Config) error {
	return commands.DispatchSub("ecs", subs, args, sess, cfg)
}
