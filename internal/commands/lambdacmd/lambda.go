// Package lambdacmd wires the Lambda verbs into the shell.
package lambdacmd

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
	commands.Register("lambda", handle, "Lambda commands: lambda <subcommand> [args]")
	commands.RegisterSubs("lambda", subs)
}

var subs = commands.Subcommands{
	"list-functions": commands.Fetching(resources.Functions),
	"get-function":   getFunction,
}

func handle(args []string, sess *session.Manager, cfg *config.Config) error {
	return commands.DispatchSub("lambda", subs, args, sess, cfg)
}

func getFunction(args []string, sess *session.Manager, cfg *config.Config) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: lambda get-function <name>")
	}
	t, err := resources.Function(context.Background(), sess, args[0])
	if err != nil {
		return err
	}
	output.Println(t.JSON())
	return nil
}
