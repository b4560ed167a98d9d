package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAcceptCompleteExpressions(t *testing.T) {
	complete := []string{
		`instances()`,
		`instances().where("State.Name", "running")`,
		`buckets()[0]`,
		`instances()[2:5]`,
		`(instances())`,
		`help()`,
	}
	for _, src := range complete {
		assert.Equal(t, Complete, Accept(src), "expected complete: %s", src)
	}
}

func TestAcceptIncompleteExpressions(t *testing.T) {
	incomplete := []string{
		`instances(`,
		`instances().where(`,
		`instances().where("State.Name",`,
		`instances().select(`,
		"instances().find(`multi\nline",
		`instances().where("a",
"b",`,
	}
	for _, src := range incomplete {
		assert.Equal(t, Incomplete, Accept(src), "expected incomplete: %s", src)
	}
}

func TestAcceptUnterminatedStringIsComplete(t *testing.T) {
	// A double-quoted literal cannot span lines, so no continuation can
	// repair it; only an open backquoted string stays incomplete.
	assert.Equal(t, Complete, Accept(`instances().find("unterminated`))
	assert.Equal(t, Complete, Accept(`"unterminated`))
	assert.Equal(t, Incomplete, Accept("instances().find(`unterminated"))
}

func TestAcceptDefinitelyInvalidIsComplete(t *testing.T) {
	// No continuation line can repair these; the evaluator reports the
	// real error.
	invalid := []string{
		`instances())`,
		`where)("a"`,
	}
	for _, src := range invalid {
		assert.Equal(t, Complete, Accept(src), "expected complete: %s", src)
	}
}

func TestAcceptBlankLine(t *testing.T) {
	assert.Equal(t, Complete, Accept("   "))
}
