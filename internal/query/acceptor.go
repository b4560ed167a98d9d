// Package query implements the expression sub-REPL: a namespace of
// resource fetchers plus chainable table methods, evaluated from a
// parsed expression tree.
package query

import (
	"go/parser"
	"strings"
)

// State classifies buffered input. Complete covers both valid
// expressions and lines that no continuation could repair; the REPL
// hands those to the evaluator, which reports the real error.
type State int

const (
	Incomplete State = iota
	Complete
)

// Accept classifies src, the newline-joined buffer so far. Only two
// parse failures are repairable by more input: a truncated expression
// and an open backquoted string. A plain double-quoted literal cannot
// span lines, so its "not terminated" error is final.
func Accept(src string) State {
	if strings.TrimSpace(src) == "" {
		return Complete
	}
	if _, err := parser.ParseExpr(normalizeSource(src)); err == nil {
		return Complete
	} else if msg := err.Error(); strings.Contains(msg, "found 'EOF'") || strings.Contains(msg, "raw string literal not terminated") {
		return Incomplete
	}
	return Complete
}
