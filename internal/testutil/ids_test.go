package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSequentialIDs(t *testing.T) {
	g := NewSequentialIDs("ledger")
	assert.Equal(t, "ledger-1", g.NewID())
	assert.Equal(t, "ledger-2", g.NewID())
}

func TestSequentialIDs_DefaultPrefix(t *testing.T) {
	g := NewSequentialIDs("")
	assert.Equal(t, "run-1", g.NewID())
}
