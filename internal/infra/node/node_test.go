package node

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetNodeInfo(t *testing.T) {
	info := GetNodeInfo()

	assert.NotEmpty(t, info.ID)
	assert.Equal(t, Version, info.Version)
	assert.Equal(t, CommitHash, info.CommitHash)
}

func TestNodeIDIsStable(t *testing.T) {
	first := GetNodeInfo()
	second := GetNodeInfo()

	assert.Equal(t, first.ID, second.ID)
}
