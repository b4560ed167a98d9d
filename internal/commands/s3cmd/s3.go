// Package s3cmd wires the S3 verbs into the shell.
package s3cmd

import (
	"context"
	"fmt"

	"awshell/internal/commands"
	"awshell/internal/config"
	"awshell/internal/resources"
	"awshell/internal/session"
)

func init() {
	commands.Register("s3", handle, "S3 commands: s3 <subcommand> [args]")
	commands.RegisterSubs("s3", subs)
}

var subs = commands.Subcommands{
	"list-buckets": listBuckets,
	"list-objects": listObjects,
}

func handle(args []string, sess *session.Manager, cfg *config.Config) error {
	return commands.DispatchSub("s3", subs, args, sess, cfg)
}

func listBuckets(args []string, sess *session.Manager, cfg *config.Config) error {
	t, err := resources.Buckets(context.Background(), sess)
	if err != nil {
		return err
	}
	commands.Emit(t, cfg)
	return nil
}

func listObjects(args []string, sess *session.Manager, cfg *config.Config) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: s3 list-objects <bucket> [prefix]")
	}
	prefix := ""
	if len(args) > 1 {
		prefix = args[1]
	}
	t, err := resources.Objects(context.Background(), sess, args[0], prefix)
	if err != nil {
		return err
	}
	commands.Emit(t, cfg)
	return nil
}
