// Package shell runs the interactive command loop.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"

	"awshell/internal/commands"
	"awshell/internal/commands/aicmd"
	"awshell/internal/config"
	"awshell/internal/logger"
	"awshell/internal/output"
	"awshell/internal/session"
	"awshell/internal/version"
)

const prompt = "aws> "

// Shell ties the command registry to a readline prompt.
type Shell struct {
	sess *session.Manager
	cfg  *config.Config
}

// New builds a shell over an existing session.
func New(sess *session.Manager, cfg *config.Config) *Shell {
	return &Shell{sess: sess, cfg: cfg}
}

func historyFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".awshell_history")
}

// Run blocks until the user exits. Interrupts abandon the current line;
// EOF and the exit verbs end the loop.
func (s *Shell) Run() error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		HistoryFile:     historyFile(),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete:    completer(commands.Default()),
	})
	if err != nil {
		return fmt.Errorf("initializing prompt: %w", err)
	}
	defer rl.Close()

	s.welcome()
	aicmd.Prewarm(s.sess, s.cfg)

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		verb, args, ok, err := parseLine(line)
		if err != nil {
			output.Errorf("parse error: %s", err)
			continue
		}
		if !ok {
			continue
		}

		if err := commands.Dispatch(verb, args, s.sess, s.cfg); err != nil {
			// Only the exit sentinel escapes the registry; everything
			// else is reported there and the loop keeps going.
			if errors.Is(err, commands.ErrExit) {
				return nil
			}
			logger.Error("dispatch failed", "command", verb, "error", err)
		}
	}
}

// parseLine splits one input line into a lowercase verb and its
// arguments. ok is false for blank lines.
func parseLine(line string) (verb string, args []string, ok bool, err error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return "", nil, false, nil
	}
	words, err := shellquote.Split(line)
	if err != nil {
		return "", nil, false, err
	}
	if len(words) == 0 {
		return "", nil, false, nil
	}
	return strings.ToLower(words[0]), words[1:], true, nil
}

func (s *Shell) welcome() {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	output.Bold(fmt.Sprintf("awshell %s", version.Get().String()))
	output.Printf("Profile: %s  Region: %s  Account: %s\n",
		s.cfg.Profile, s.cfg.Region, s.sess.AccountID(ctx))
	output.Dim("Type 'help' for commands, 'query' for query mode, 'ai <question>' for the assistant.\n")
}
