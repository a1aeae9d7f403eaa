package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newssense/schema"
)

func TestMemoryOverflow(t *testing.T) {
	mem := NewMemory(2)
	mem.NewTurn()
	mem.NewMessage(UserRole, schema.String("one"))
	mem.NewMessage(AssistantRole, schema.String("two"))
	mem.NewMessage(UserRole, schema.String("three"))
	require.Equal(t, 2, mem.MessageCount())
	history := mem.History()
	assert.Equal(t, "two", schema.Stringify(history[0].Content()))
	assert.Equal(t, "three", schema.Stringify(history[1].Content()))
}

func TestMemoryReset(t *testing.T) {
	mem := NewMemory(0)
	mem.NewTurn()
	turnID := mem.TurnID()
	require.NotEmpty(t, turnID)
	mem.NewMessage(UserRole, schema.String("hello"))
	mem.Reset()
	assert.Zero(t, mem.MessageCount())
}
