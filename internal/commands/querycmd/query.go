// Package querycmd enters query mode from the shell.
package querycmd

import (
	"awshell/internal/commands"
	"awshell/internal/config"
	"awshell/internal/query"
	"awshell/internal/session"
)

func init() {
	commands.Register("query", handle, "Enter query mode")
	commands.Register("q", handle, "Enter query mode")
}

func handle(args []string, sess *session.Manager, cfg *config.Config) error {
	return query.Run(sess, cfg)
}
