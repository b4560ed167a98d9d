package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		verb string
		args []string
		ok   bool
	}{
		{"simple", "ec2 list-instances", "ec2", []string{"list-instances"}, true},
		{"verb lowercased", "EC2 List-Instances", "ec2", []string{"List-Instances"}, true},
		{"quoted argument", `search instances "web server"`, "search", []string{"instances", "web server"}, true},
		{"single quotes", `ai 'what is running?'`, "ai", []string{"what is running?"}, true},
		{"surrounding whitespace", "   whoami   ", "whoami", []string{}, true},
		{"blank", "   ", "", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verb, args, ok, err := parseLine(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.verb, verb)
			if tt.ok {
				assert.Equal(t, tt.args, args)
			}
		})
	}
}

func TestParseLineRejectsUnbalancedQuotes(t *testing.T) {
	_, _, _, err := parseLine(`search instances "unterminated`)
	assert.Error(t, err)
}
