// Package dynamocmd wires the DynamoDB verbs into the shell.
package dynamocmd

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
	commands.Register("dynamodb", handle, "DynamoDB commands: dynamodb <subcommand> [args]")
	commands.RegisterSubs("dynamodb", subs)
}

var subs = commands.Subcommands{
	"list-tables":    commands.Fetching(resources.Tables),
	"describe-table": describeTable,
}

func handle(args []string, sess *session.Manager, cfg *config.Config) error {
	return commands.DispatchSub("dynamodb", subs, args, sess, cfg)
}

func describeTable(args []string, sess *session.Manager, cfg *config.Config) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: dynamodb describe-table <name>")
	}
	t, err := resources.TableInfo(context.Background(), sess, args[0])
	if err != nil {
		return err
	}
	output.Println(t.JSON())
	return nil
}
