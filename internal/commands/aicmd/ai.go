// Package aicmd exposes the conversational assistant as the ai verb.
package aicmd

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/kballard/go-shellquote"

	"awshell/internal/assistant"
	"awshell/internal/commands"
	"awshell/internal/config"
	"awshell/internal/output"
	"awshell/internal/session"
)

func init() {
	commands.Register("ai", handle, "Ask the assistant: ai <question> | ai clear")
}

var (
	mu      sync.Mutex
	current *assistant.Assistant
)

// instance returns the shared assistant, creating it on first use.
func instance(sess *session.Manager, cfg *config.Config) *assistant.Assistant {
	mu.Lock()
	defer mu.Unlock()
	if current == nil {
		current = assistant.New(sess, cfg)
	}
	return current
}

// Prewarm starts assistant initialization in the background so the
// first question answers faster. Called once at shell startup.
func Prewarm(sess *session.Manager, cfg *config.Config) {
	instance(sess, cfg).Prewarm()
}

func handle(args []string, sess *session.Manager, cfg *config.Config) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: ai <question> | ai clear")
	}

	a := instance(sess, cfg)
	if len(args) == 1 && strings.EqualFold(args[0], "clear") {
		a.Clear()
		output.Success("Conversation cleared")
		return nil
	}

	question := strings.Join(args, " ")
	answer, err := a.Ask(context.Background(), question)
	if err != nil {
		return err
	}

	output.Println(assistant.RenderMarkdown(answer))
	return offerCommands(assistant.ExtractCommands(answer), sess, cfg)
}

// offerCommands asks for approval before running each suggestion.
// A declined or failed suggestion never stops the rest.
func offerCommands(cmds []string, sess *session.Manager, cfg *config.Config) error {
	for _, cmd := range cmds {
		answer, err := output.Ask(fmt.Sprintf("Run '%s'? [y/N] ", cmd))
		if err != nil {
			return nil
		}
		if !strings.EqualFold(answer, "y") && !strings.EqualFold(answer, "yes") {
			continue
		}

		words, err := shellquote.Split(cmd)
		if err != nil || len(words) == 0 {
			output.Warning("Could not parse suggested command: " + cmd)
			continue
		}
		if err := commands.Dispatch(strings.ToLower(words[0]), words[1:], sess, cfg); err != nil {
			return err
		}
	}
	return nil
}
