package query

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"

	"awshell/internal/commands"
	"awshell/internal/config"
	"awshell/internal/output"
	"awshell/internal/session"
	"awshell/pkg/tabular"
)

const (
	promptFresh    = ">>> "
	promptContinue = "... "
)

func historyFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".awshell_query_history")
}

// Run drives the query sub-REPL until exit, quit, or EOF.
func Run(sess *session.Manager, cfg *config.Config) error {
	env := NewEnv(Namespace(sess))

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          promptFresh,
		HistoryFile:     historyFile(),
		InterruptPrompt: "^C",
	})
	if err != nil {
		return fmt.Errorf("initializing query prompt: %w", err)
	}
	defer rl.Close()

	output.Dim("Query mode. Chain expressions like instances().where(\"State.Name\", \"running\"); help() lists the namespace; exit leaves.")

	var buffer []string
	for {
		if len(buffer) == 0 {
			rl.SetPrompt(promptFresh)
		} else {
			rl.SetPrompt(promptContinue)
		}

		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			buffer = nil
			continue
		}
		if err != nil {
			return nil
		}

		if len(buffer) == 0 {
			switch strings.TrimSpace(line) {
			case "":
				continue
			case "exit", "quit":
				return nil
			}
		}

		buffer = append(buffer, line)
		src := strings.Join(buffer, "\n")
		if Accept(src) == Incomplete {
			continue
		}
		buffer = nil

		result, err := env.Eval(src)
		if err != nil {
			output.Errorf("%s", session.FormatError(err))
			continue
		}
		printResult(result, cfg)
	}
}

func printResult(v any, cfg *config.Config) {
	switch r := v.(type) {
	case nil:
	case *tabular.Table:
		commands.Emit(r, cfg)
	case string:
		output.Println(r)
	case int, bool:
		output.Println(fmt.Sprint(r))
	case []any:
		output.Println(tabular.New(r).JSON())
	default:
		output.Println(tabular.New([]any{r}).JSON())
	}
}
