// Package cfncmd wires the CloudFormation verbs into the shell.
package cfncmd

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
	commands.Register("cfn", handle, "CloudFormation commands: cfn <subcommand> [args]")
	commands.RegisterSubs("cfn", subs)
}

var subs = commands.Subcommands{
	"list-stacks":    commands.Fetching(resources.Stacks),
	"describe-stack": describeStack,
}

func handle(args []string, sess *session.Manager, cfg *config.Config) error {
	return commands.DispatchSub("cfn", subs, args, sess, cfg)
}

func describeStack(args []string, sess *session.Manager, cfg *config.Config) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: cfn describe-stack <name>")
	}
	t, err := resources.Stack(context.Background(), sess, args[0])
	if err != nil {
		return err
	}
	output.Println(t.JSON())
	return nil
}
