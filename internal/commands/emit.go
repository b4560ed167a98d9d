package commands

import (
	"context"
	"fmt"

	"awshell/internal/config"
	"awshell/internal/output"
	"awshell/internal/session"
	"awshell/pkg/tabular"
)

// Emit prints a result table according to the session's output format:
// "json" dumps the underlying data, "text" prints tab-separated values,
// anything else renders the table.
func Emit(t *tabular.Table, cfg *config.Config) {
	switch cfg.OutputFormat {
	case "json":
		output.Println(t.JSON())
	case "text":
		t.Text(output.Writer())
	default:
		t.Render(output.Writer())
	}
}

// Fetching adapts an argument-free table fetcher into a Handler that
// emits the fetched table.
func Fetching(fetch func(context.Context, *session.Manager) (*tabular.Table, error)) Handler {
	return func(args []string, sess *session.Manager, cfg *config.Config) error {
		t, err := fetch(context.Background(), sess)
		if err != nil {
			return err
		}
		Emit(t, cfg)
		return nil
	}
}

// FetchingOne adapts a one-argument fetcher into a describe-style Handler:
// the single detail record is always printed as JSON.
func FetchingOne(usage string, fetch func(context.Context, *session.Manager, string) (*tabular.Table, error)) Handler {
	return func(args []string, sess *session.Manager, cfg *config.Config) error {
		if len(args) != 1 {
			return fmt.Errorf("usage: %s", usage)
		}
		t, err := fetch(context.Background(), sess, args[0])
		if err != nil {
			return err
		}
		output.Println(t.JSON())
		return nil
	}
}

// FetchingTable is FetchingOne for listings keyed by a parent resource;
// the result honors the configured output format instead of forcing JSON.
func FetchingTable(usage string, fetch func(context.Context, *session.Manager, string) (*tabular.Table, error)) Handler {
	return func(args []string, sess *session.Manager, cfg *config.Config) error {
		if len(args) != 1 {
			return fmt.Errorf("usage: %s", usage)
		}
		t, err := fetch(context.Background(), sess, args[0])
		if err != nil {
			return err
		}
		Emit(t, cfg)
		return nil
	}
}
