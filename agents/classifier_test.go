package agents

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeywordClassifierTrending(t *testing.T) {
	c := NewKeywordClassifier()
	cls, err := c.Classify(context.Background(), "What's trending in tech today?")
	require.NoError(t, err)
	assert.Equal(t, IntentTrending, cls.Intent)
	assert.Equal(t, "tech", cls.Topic)
}

func TestKeywordClassifierTrendingWithoutTopic(t *testing.T) {
	c := NewKeywordClassifier()
	cls, err := c.Classify(context.Background(), "show me the latest news")
	require.NoError(t, err)
	assert.Equal(t, IntentTrending, cls.Intent)
	assert.Empty(t, cls.Topic)
}

func TestKeywordClassifierFactCheck(t *testing.T) {
	c := NewKeywordClassifier()
	for _, utterance := range []string{
		"Did Apple acquire OpenAI?",
		"fact check: the moon is made of cheese",
		"Is it true that Go has generics?",
	} {
		cls, err := c.Classify(context.Background(), utterance)
		require.NoError(t, err)
		assert.Equal(t, IntentFactCheck, cls.Intent, utterance)
		assert.NotEmpty(t, cls.Claim, utterance)
	}
}

func TestKeywordClassifierSummarize(t *testing.T) {
	c := NewKeywordClassifier()
	cls, err := c.Classify(context.Background(), "Summarize this article: OpenAI expands GPT access to new platforms")
	require.NoError(t, err)
	assert.Equal(t, IntentSummarize, cls.Intent)
	assert.Equal(t, "OpenAI expands GPT access to new platforms", cls.ArticleText)
}

func TestKeywordClassifierUnrecognized(t *testing.T) {
	c := NewKeywordClassifier()
	cls, err := c.Classify(context.Background(), "play some jazz")
	require.NoError(t, err)
	assert.Equal(t, IntentUnrecognized, cls.Intent)
}
