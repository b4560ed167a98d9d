// Package stscmd wires the STS verbs into the shell.
package stscmd

import (
	"context"

	"awshell/internal/commands"
	"awshell/internal/config"
	"awshell/internal/session"
	"awshell/pkg/tabular"
)

func init() {
	commands.Register("sts", handle, "STS commands: sts <subcommand>")
	commands.RegisterSubs("sts", subs)
}

var subs = commands.Subcommands{
	"get-caller-identity": callerIdentity,
}

func handle(args []string, sess *session.Manager, cfg *config.Config) error {
	return commands.DispatchSub("sts", subs, args, sess, cfg)
}

func callerIdentity(args []string, sess *session.Manager, cfg *config.Config) error {
	identity, err := sess.CallerIdentity(context.Background())
	if err != nil {
		return err
	}
	t := tabular.NewRecords([]tabular.Record{{
		"Account": identity.Account,
		"UserId":  identity.UserID,
		"Arn":     identity.ARN,
	}}).WithTitle("Caller Identity")
	commands.Emit(t, cfg)
	return nil
}
