package version

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionIsValidSemver(t *testing.T) {
	assert.True(t, IsValid())
}

func TestStringShortForm(t *testing.T) {
	info := Info{Version: "1.2.3", GitCommit: "unknown"}
	assert.Equal(t, "v1.2.3", info.String())

	info.GitCommit = "abcdef1234567890"
	assert.Equal(t, "v1.2.3 (abcdef1)", info.String())
}

func TestDetailedIncludesBuildInfo(t *testing.T) {
	detailed := Get().Detailed()
	assert.True(t, strings.HasPrefix(detailed, "awshell v"))
	assert.Contains(t, detailed, "go:")
	assert.Contains(t, detailed, "platform:")
}
