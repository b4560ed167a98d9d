// Package rawcmd exposes the enumerated provider operations directly:
// raw <service> <operation> [key=value ...].
package rawcmd

import (
	"context"
	"fmt"
	"strings"

	"awshell/internal/commands"
	"awshell/internal/config"
	"awshell/internal/resources"
	"awshell/internal/session"
)

func init() {
	commands.Register("raw", raw, "Call a provider operation: raw <service> <operation> [key=value ...]")
}

func raw(args []string, sess *session.Manager, cfg *config.Config) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: raw <service> <operation> [key=value ...]  (services: %s)",
			strings.Join(resources.RawServices(), ", "))
	}
	if len(args) == 1 {
		return fmt.Errorf("usage: raw %s <operation> [key=value ...]  (operations: %s)",
			args[0], strings.Join(resources.RawOperations(args[0]), ", "))
	}

	params := make(map[string]string)
	for _, pair := range args[2:] {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" {
			return fmt.Errorf("malformed parameter %q (expected key=value)", pair)
		}
		params[key] = value
	}

	t, err := resources.Raw(context.Background(), sess, args[0], args[1], params)
	if err != nil {
		return err
	}
	commands.Emit(t, cfg)
	return nil
}
