package searchcmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchRequiresResourceAndKeyword(t *testing.T) {
	err := search([]string{"instances"}, nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "usage:")
}

func TestSearchRejectsUnknownResource(t *testing.T) {
	err := search([]string{"widgets", "foo"}, nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "widgets")
	assert.Contains(t, err.Error(), "instances")
}

func TestResourceNamesAreSorted(t *testing.T) {
	names := resourceNames()
	assert.Contains(t, names, "alarms, buckets")
	assert.Contains(t, names, "log-groups")
}
