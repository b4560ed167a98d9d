// Package ec2cmd wires the EC2 verbs into the shell.
package ec2cmd

import (
	"context"
	"fmt"
	"strings"

	"awshell/internal/commands"
	"awshell/internal/config"
	"awshell/internal/output"
	"awshell/internal/resources"
	"awshell/internal/session"
)

func init() {
	commands.Register("ec2", handle, "EC2 commands: ec2 <subcommand> [args]")
	commands.RegisterSubs("ec2", subs)
}

var subs = commands.Subcommands{
	"list-instances":       listInstances,
	"describe-instance":    describeInstance,
	"start-instance":       startInstance,
	"stop-instance":        stopInstance,
	"list-vpcs":            listVPCs,
	"list-subnets":         listSubnets,
	"list-security-groups": listSecurityGroups,
}

func handle(args []string, sess *session.Manager, cfg *config.Config) error {
	return commands.DispatchSub("ec2", subs, args, sess, cfg)
}

func listInstances(args []string, sess *session.Manager, cfg *config.Config) error {
	t, err := resources.Instances(context.Background(), sess)
	if err != nil {
		return err
	}
	commands.Emit(t, cfg)
	return nil
}

func describeInstance(args []string, sess *session.Manager, cfg *config.Config) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: ec2 describe-instance <instance-id>")
	}
	t, err := resources.Instance(context.Background(), sess, args[0])
	if err != nil {
		return err
	}
	output.Println(t.JSON())
	return nil
}

// confirm asks before a mutating call and reports whether to proceed.
func confirm(action, id string) bool {
	answer, err := output.Ask(fmt.Sprintf("%s %s? [y/N] ", action, id))
	if err != nil {
		return false
	}
	return strings.EqualFold(answer, "y") || strings.EqualFold(answer, "yes")
}

func startInstance(args []string, sess *session.Manager, cfg *config.Config) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: ec2 start-instance <instance-id>")
	}
	if !confirm("Start", args[0]) {
		output.Warning("Cancelled")
		return nil
	}
	if err := resources.StartInstance(context.Background(), sess, args[0]); err != nil {
		return err
	}
	output.Success("Start requested for " + args[0])
	return nil
}

func stopInstance(args []string, sess *session.Manager, cfg *config.Config) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: ec2 stop-instance <instance-id>")
	}
	if !confirm("Stop", args[0]) {
		output.Warning("Cancelled")
		return nil
	}
	if err := resources.StopInstance(context.Background(), sess, args[0]); err != nil {
		return err
	}
	output.Success("Stop requested for " + args[0])
	return nil
}

func listVPCs(args []string, sess *session.Manager, cfg *config.Config) error {
	t, err := resources.VPCs(context.Background(), sess)
	if err != nil {
		return err
	}
	commands.Emit(t, cfg)
	return nil
}

func optionalVPC(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}

func listSubnets(args []string, sess *session.Manager, cfg *config.Config) error {
	t, err := resources.Subnets(context.Background(), sess, optionalVPC(args))
	if err != nil {
		return err
	}
	commands.Emit(t, cfg)
	return nil
}

func listSecurityGroups(args []string, sess *session.Manager, cfg *config.Config) error {
	t, err := resources.SecurityGroups(context.Background(), sess, optionalVPC(args))
	if err != nil {
		return err
	}
	commands.Emit(t, cfg)
	return nil
}
