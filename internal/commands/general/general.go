// Package general provides the session-level shell verbs: profile and
// region switching, output format, config editing, identity, and exit.
package general

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"awshell/internal/commands"
	"awshell/internal/config"
	"awshell/internal/logger"
	"awshell/internal/output"
	"awshell/internal/session"
	"awshell/pkg/tabular"
)

func init() {
	commands.Register("use-profile", useProfile, "Switch the active AWS profile: use-profile <name>")
	commands.Register("set-region", setRegion, "Switch the active region: set-region <region>")
	commands.Register("set-output", setOutput, "Set output format: set-output table|json|text")
	commands.Register("set-config", setConfig, "Persist a config value: set-config <key> <value>")
	commands.Register("login", login, "Run SSO login for the active profile")
	commands.Register("whoami", whoami, "Show the current caller identity")
	commands.Register("services", services, "List supported service commands")
	commands.Register("clear", clear, "Clear the screen")
	commands.Register("exit", exit, "Leave the shell")
	commands.Register("quit", exit, "Leave the shell")
}

func useProfile(args []string, sess *session.Manager, cfg *config.Config) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: use-profile <name>")
	}
	sess.SwitchProfile(args[0])
	logger.Debug("switched profile", "profile", args[0])
	output.Success("Using profile " + args[0])
	return nil
}

func setRegion(args []string, sess *session.Manager, cfg *config.Config) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: set-region <region>")
	}
	sess.SwitchRegion(args[0])
	output.Success("Region set to " + args[0])
	return nil
}

func setOutput(args []string, sess *session.Manager, cfg *config.Config) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: set-output table|json|text")
	}
	if !cfg.SetOutput(args[0]) {
		return fmt.Errorf("unknown output format %q (expected table, json, or text)", args[0])
	}
	output.Success("Output format set to " + cfg.OutputFormat)
	return nil
}

func setConfig(args []string, sess *session.Manager, cfg *config.Config) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: set-config <key> <value>")
	}
	if err := cfg.Set(args[0], args[1]); err != nil {
		return err
	}
	output.Success(fmt.Sprintf("Saved %s to %s", args[0], cfg.Path()))
	return nil
}

// login shells out to the AWS CLI, which owns the SSO browser flow and
// the token cache. The session is reset afterwards so fresh credentials
// are picked up.
func login(args []string, sess *session.Manager, cfg *config.Config) error {
	cmd := exec.Command("aws", "sso", "login", "--profile", cfg.Profile)
	cmd.Stdin = os.Stdin
	cmd.Stdout = output.Writer()
	cmd.Stderr = output.Writer()
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("aws sso login: %w", err)
	}
	sess.SwitchProfile(cfg.Profile)
	output.Success("Logged in with profile " + cfg.Profile)
	return nil
}

func whoami(args []string, sess *session.Manager, cfg *config.Config) error {
	identity, err := sess.CallerIdentity(context.Background())
	if err != nil {
		return err
	}
	t := tabular.NewRecords([]tabular.Record{{
		"Account": identity.Account,
		"UserId":  identity.UserID,
		"Arn":     identity.ARN,
		"Profile": cfg.Profile,
		"Region":  cfg.Region,
	}}).WithTitle("Caller Identity")
	commands.Emit(t, cfg)
	return nil
}

func services(args []string, sess *session.Manager, cfg *config.Config) error {
	output.Bold("Service commands:")
	for _, entry := range commands.Default().Entries() {
		output.Printf("  %-16s %s\n", entry.Name, entry.Help)
	}
	output.Dim("\nType '<service> help' for subcommands, 'query' for query mode, 'ai <question>' for the assistant.")
	return nil
}

func clear(args []string, sess *session.Manager, cfg *config.Config) error {
	fmt.Fprint(output.Writer(), "\033[2J\033[H")
	return nil
}

func exit(args []string, sess *session.Manager, cfg *config.Config) error {
	return commands.ErrExit
}
