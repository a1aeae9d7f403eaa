package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewContextDefaults(t *testing.T) {
	before := time.Now()
	ctx := NewContext("", nil)
	require.NotEmpty(t, ctx.UserID())
	assert.NotNil(t, ctx.PreferredTopics())
	assert.Empty(t, ctx.PreferredTopics())
	assert.False(t, ctx.StartedAt().Before(before))
}

func TestContextUserIDStable(t *testing.T) {
	ctx := NewContext("news_user_001", []string{"tech", "politics"})
	assert.Equal(t, "news_user_001", ctx.UserID())
	ctx.SetPreferredTopics([]string{"finance"})
	assert.Equal(t, "news_user_001", ctx.UserID())
	assert.Equal(t, []string{"finance"}, ctx.PreferredTopics())
}

func TestPreferredTopicsCopied(t *testing.T) {
	topics := []string{"tech"}
	ctx := NewContext("u", topics)
	topics[0] = "mutated"
	assert.Equal(t, []string{"tech"}, ctx.PreferredTopics())
}

func TestHistoryAppendOnly(t *testing.T) {
	h := NewHistory()
	h.Append("user", "hello")
	h.Append("assistant", "hi")
	require.Equal(t, 2, h.Len())
	turns := h.Turns()
	assert.Equal(t, "user", turns[0].Role)
	assert.Equal(t, "hello", turns[0].Text)
	assert.Equal(t, "assistant", turns[1].Role)

	h.Reset()
	assert.Zero(t, h.Len())
}
