// Package kmscmd wires the KMS verbs into the shell.
package kmscmd

import (
	"context"
	"fmt"

	"awshell/internal/commands"
	"awshell/internal/config"
	"awshell/internal/output"
	"awshell/internal/resources"
	"awshell/internal/session"
)

func init() {
	commands.Register("kms", handle, "KMS commands: kms <subcommand> [args]")
	commands.RegisterSubs("kms", subs)
}

var subs = commands.Subcommands{
	"list-keys":      commands.Fetching(resources.Keys),
	"describe-key":   commands.FetchingOne("kms describe-key <key-id-or-alias>", resources.KeyInfo),
	"list-aliases":   listAliases,
	"get-key-policy": getKeyPolicy,
	"get-config":     commands.FetchingOne("kms get-config <key-id-or-alias>", resources.KeyInfo),
}

func handle(args []string, sess *session.Manager, cfg *config.Config) error {
	return commands.DispatchSub("kms", subs, args, sess, cfg)
}

func listAliases(args []string, sess *session.Manager, cfg *config.Config) error {
	filter := ""
	if len(args) > 0 {
		filter = args[0]
	}
	t, err := resources.KeyAliases(context.Background(), sess, filter)
	if err != nil {
		return err
	}
	commands.Emit(t, cfg)
	return nil
}

func getKeyPolicy(args []string, sess *session.Manager, cfg *config.Config) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: kms get-key-policy <key-id-or-alias>")
	}
	policy, err := resources.KeyPolicy(context.Background(), sess, args[0])
	if err != nil {
		return err
	}
	output.Println(policy)
	return nil
}
