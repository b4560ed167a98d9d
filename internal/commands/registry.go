// Package commands provides the flat verb registry and dispatcher for the
// interactive shell. Command packages register themselves via init(), the
// REPL dispatches one verb per line, and no handler failure short of the
// exit sentinel ever takes the shell down.
package commands

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"awshell/internal/config"
	"awshell/internal/logger"
	"awshell/internal/output"
	"awshell/internal/session"
)

// ErrExit is the control-flow sentinel that terminates the REPL. It is the
// one error Dispatch propagates instead of printing.
var ErrExit = errors.New("exit")

// Handler executes one shell verb.
type Handler func(args []string, sess *session.Manager, cfg *config.Config) error

// Entry is one registered verb.
type Entry struct {
	Name    string
	Handler Handler
	Help    string
}

// Registry maps lowercase verbs to handlers.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Entry
	subs    map[string][]string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]Entry), subs: make(map[string][]string)}
}

// Register inserts or overwrites an entry keyed by the lowercase name.
// Last registration wins; aliases are just repeat registrations.
func (r *Registry) Register(name string, handler Handler, help string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	name = strings.ToLower(name)
	r.entries[name] = Entry{Name: name, Handler: handler, Help: help}
}

// RegisterSubs records a verb's subcommand names so the prompt can
// complete them. Registration order does not matter; names come back
// sorted.
func (r *Registry) RegisterSubs(verb string, subs Subcommands) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subs[strings.ToLower(verb)] = subs.Names()
}

// SubNames returns a verb's recorded subcommand names, sorted.
func (r *Registry) SubNames(verb string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.subs[strings.ToLower(verb)]
}

// Get returns the entry for a verb.
func (r *Registry) Get(name string) (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[strings.ToLower(name)]
	return e, ok
}

// Entries returns all registered entries sorted by name.
func (r *Registry) Entries() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	all := make([]Entry, 0, len(r.entries))
	for _, e := range r.entries {
		all = append(all, e)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return all
}

// Dispatch runs one verb. Unknown verbs print a hint. Handler errors are
// printed and swallowed; a panicking handler is recovered the same way.
// Only ErrExit comes back to the caller, so one failing command never
// aborts the shell.
func (r *Registry) Dispatch(name string, args []string, sess *session.Manager, cfg *config.Config) error {
	entry, ok := r.Get(name)
	if !ok {
		output.Errorf("Unknown command: %s", name)
		output.Dim("Type 'help' to see available commands.")
		return nil
	}

	var err error
	func() {
		defer func() {
			if rec := recover(); rec != nil {
				err = fmt.Errorf("%v", rec)
			}
		}()
		err = entry.Handler(args, sess, cfg)
	}()

	if err != nil {
		if errors.Is(err, ErrExit) {
			return ErrExit
		}
		logger.Debug("Command failed", "command", name, "error", err)
		output.Errorf("%s", session.FormatError(err))
	}
	return nil
}

// defaultRegistry is what command packages register into from init().
var defaultRegistry = NewRegistry()

// Default returns the process-wide registry.
func Default() *Registry { return defaultRegistry }

// Register adds a verb to the default registry.
func Register(name string, handler Handler, help string) {
	defaultRegistry.Register(name, handler, help)
}

// RegisterSubs records subcommand names on the default registry.
func RegisterSubs(verb string, subs Subcommands) {
	defaultRegistry.RegisterSubs(verb, subs)
}

// Dispatch runs a verb against the default registry.
func Dispatch(name string, args []string, sess *session.Manager, cfg *config.Config) error {
	return defaultRegistry.Dispatch(name, args, sess, cfg)
}
