// Package sqscmd wires the SQS verbs into the shell.
package sqscmd

import (
	"context"
	"fmt"

	"awshell/internal/commands"
	"awshell/internal/config"
	"awshell/internal/resources"
	"awshell/internal/session"
)

func init() {
	commands.Register("sqs", handle, "SQS commands: sqs <subcommand> [args]")
	commands.RegisterSubs("sqs", subs)
}

var subs = commands.Subcommands{
	"list-queues":    commands.Fetching(resources.Queues),
	"get-attributes": queueAttributes,
}

func handle(args []string, sess *session.Manager, cfg *config.Config) error {
	return commands.DispatchSub("sqs", subs, args, sess, cfg)
}

func queueAttributes(args []string, sess *session.Manager, cfg *config.Config) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: sqs get-attributes <queue-url>")
	}
	t, err := resources.QueueAttributes(context.Background(), sess, args[0])
	if err != nil {
		return err
	}
	commands.Emit(t, cfg)
	return nil
}
