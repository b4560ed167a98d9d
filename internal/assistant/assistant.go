package assistant

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"awshell/internal/config"
	"awshell/internal/logger"
	"awshell/internal/session"
)

const systemPromptTemplate = `You are an assistant inside an interactive AWS shell.
Answer questions about the user's AWS account and suggest shell commands when they help.
When you suggest a command the user could run, put each one alone in a fenced block tagged "command", for example:

` + "```command\nec2 list-instances\n```" + `

Only suggest commands this shell supports. Never suggest reading secret values.

Session context:
%s`

// Assistant owns one conversation, initialized on first use.
// Prewarm starts that initialization early from a background goroutine;
// whichever of Prewarm and Ask runs first pays the setup cost.
type Assistant struct {
	mu        sync.Mutex
	ready     bool
	conv      *Conversation
	completer Completer

	sess *session.Manager
	cfg  *config.Config

	newCompleter   func(apiKey, model string) (Completer, error)
	lookupIdentity func(ctx context.Context) (session.Identity, error)
}

// New builds an assistant over the session; nothing is initialized yet.
func New(sess *session.Manager, cfg *config.Config) *Assistant {
	return &Assistant{
		sess: sess,
		cfg:  cfg,
		newCompleter: func(apiKey, model string) (Completer, error) {
			return NewAnthropicCompleter(apiKey, model)
		},
		lookupIdentity: sess.CallerIdentity,
	}
}

// Prewarm initializes the conversation off the caller's goroutine so
// the first question does not stall on identity lookups.
func (a *Assistant) Prewarm() {
	go func() {
		if err := a.ensure(); err != nil {
			logger.Debug("assistant prewarm skipped", "error", err)
		}
	}()
}

// ensure performs the once-only setup under the lock. Safe to call from
// any goroutine; later calls return immediately.
func (a *Assistant) ensure() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.ready {
		return nil
	}

	completer, err := a.newCompleter(a.cfg.LLM.APIKey, a.cfg.LLM.Model)
	if err != nil {
		return err
	}

	a.completer = completer
	a.conv = NewConversation(fmt.Sprintf(systemPromptTemplate, a.sessionContext()))
	a.ready = true
	logger.Debug("assistant conversation initialized", "conversation", a.conv.ID)
	return nil
}

// sessionContext describes the session for the system prompt. Identity
// lookup is best effort: a shell with no credentials still gets an
// assistant.
func (a *Assistant) sessionContext() string {
	lines := []string{
		"Profile: " + a.cfg.Profile,
		"Region: " + a.cfg.Region,
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if identity, err := a.lookupIdentity(ctx); err == nil {
		lines = append(lines, "Account: "+identity.Account, "Caller ARN: "+identity.ARN)
	}
	return strings.Join(lines, "\n")
}

// Ask sends one question and returns the assistant's reply. A failed
// request leaves the conversation exactly as it was before the call.
func (a *Assistant) Ask(ctx context.Context, question string) (string, error) {
	if err := a.ensure(); err != nil {
		return "", err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.conv.AddUser(question)
	answer, err := a.completer.Complete(ctx, a.conv.System, a.conv.Messages())
	if err != nil {
		a.conv.DropLastUser()
		return "", err
	}
	a.conv.AddAssistant(answer)
	return answer, nil
}

// Clear discards the conversation; the next Ask starts a fresh one.
func (a *Assistant) Clear() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.ready = false
	a.conv = nil
	a.completer = nil
}

var commandFence = regexp.MustCompile("(?s)```command\\s*\n(.*?)```")

// ExtractCommands pulls the suggested shell commands out of a reply.
// Each fenced command block may hold several lines, one command each.
func ExtractCommands(answer string) []string {
	var cmds []string
	for _, match := range commandFence.FindAllStringSubmatch(answer, -1) {
		for _, line := range strings.Split(match[1], "\n") {
			if line = strings.TrimSpace(line); line != "" {
				cmds = append(cmds, line)
			}
		}
	}
	return cmds
}
