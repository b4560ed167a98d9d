// Package main provides the awshell CLI entry point: an interactive
// shell for exploring AWS accounts, with query mode and an assistant.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	_ "awshell/internal/commands/aicmd" // Imports for side effects (init registration)
	_ "awshell/internal/commands/cfncmd"
	_ "awshell/internal/commands/cloudfrontcmd"
	_ "awshell/internal/commands/cognitocmd"
	_ "awshell/internal/commands/cwcmd"
	_ "awshell/internal/commands/dynamocmd"
	_ "awshell/internal/commands/ec2cmd"
	_ "awshell/internal/commands/ecscmd"
	_ "awshell/internal/commands/elasticachecmd"
	_ "awshell/internal/commands/gacmd"
	_ "awshell/internal/commands/general"
	_ "awshell/internal/commands/helpcmd"
	_ "awshell/internal/commands/iamcmd"
	_ "awshell/internal/commands/kmscmd"
	_ "awshell/internal/commands/lambdacmd"
	_ "awshell/internal/commands/opensearchcmd"
	_ "awshell/internal/commands/querycmd"
	_ "awshell/internal/commands/rawcmd"
	_ "awshell/internal/commands/rdscmd"
	_ "awshell/internal/commands/route53cmd"
	_ "awshell/internal/commands/s3cmd"
	_ "awshell/internal/commands/searchcmd"
	_ "awshell/internal/commands/secretscmd"
	_ "awshell/internal/commands/sescmd"
	_ "awshell/internal/commands/sqscmd"
	_ "awshell/internal/commands/ssmcmd"
	_ "awshell/internal/commands/ssocmd"
	_ "awshell/internal/commands/stscmd"

	"awshell/internal/commands"
	"awshell/internal/config"
	"awshell/internal/logger"
	"awshell/internal/query"
	"awshell/internal/session"
	"awshell/internal/shell"
	"awshell/internal/version"
)

var (
	configPath string
	logLevel   string
	logFile    string
)

var rootCmd = &cobra.Command{
	Use:   "awshell",
	Short: "Interactive shell for exploring AWS accounts",
	Long: `awshell is an interactive command shell for AWS: service listing
commands, a chainable query mode over the results, and a conversational
assistant that can suggest commands.`,
	RunE: runShell,
}

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start the interactive shell (default)",
	RunE:  runShell,
}

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Start query mode directly",
	RunE: func(_ *cobra.Command, _ []string) error {
		sess, cfg, err := buildSession()
		if err != nil {
			return err
		}
		return query.Run(sess, cfg)
	},
}

var execCmd = &cobra.Command{
	Use:   "exec <command> [args...]",
	Short: "Run a single shell command and exit",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		sess, cfg, err := buildSession()
		if err != nil {
			return err
		}
		return commands.Dispatch(strings.ToLower(args[0]), args[1:], sess, cfg)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println(version.Get().Detailed())
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.awshell/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Set log level (debug|info|warn|error)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to file instead of stderr")

	for _, flag := range []string{"config", "log-level", "log-file"} {
		if err := viper.BindPFlag(flag, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
			fmt.Fprintf(os.Stderr, "Error binding %s flag: %v\n", flag, err)
			os.Exit(1)
		}
	}

	rootCmd.AddCommand(shellCmd)
	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(execCmd)
	rootCmd.AddCommand(versionCmd)

	cobra.OnInitialize(initLogging)
}

func initLogging() {
	if err := logger.Configure(logLevel, logFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error configuring logger: %v\n", err)
		os.Exit(1)
	}
}

func buildSession() (*session.Manager, *config.Config, error) {
	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	return session.New(cfg), cfg, nil
}

func runShell(_ *cobra.Command, _ []string) error {
	sess, cfg, err := buildSession()
	if err != nil {
		return err
	}
	logger.Debug("starting shell", "version", version.Get().Version, "profile", cfg.Profile, "region", cfg.Region)
	return shell.New(sess, cfg).Run()
}
