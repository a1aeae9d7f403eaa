package summarize

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCompleter struct {
	response string
	err      error
	prompts  []string
}

func (c *stubCompleter) Complete(_ context.Context, prompt string) (string, error) {
	c.prompts = append(c.prompts, prompt)
	return c.response, c.err
}

func TestRunStripsBulletMarkers(t *testing.T) {
	completer := &stubCompleter{response: "- point one\n- point two\n- point three"}
	tool := New(WithCompleter(completer))
	out := new(Output)
	require.NoError(t, tool.Run(context.Background(), NewInput("OpenAI expands GPT access to new platforms"), out))
	assert.Equal(t, SummaryTopic, out.Summary.Topic)
	assert.Equal(t, []string{"point one", "point two", "point three"}, out.Summary.BulletPoints)
	require.Len(t, completer.prompts, 1)
	assert.Contains(t, completer.prompts[0], "OpenAI expands GPT access to new platforms")
}

func TestRunMixedMarkersAndBlankLines(t *testing.T) {
	completer := &stubCompleter{response: "• first\n\n  * second\n   \n- third  "}
	tool := New(WithCompleter(completer))
	out := new(Output)
	require.NoError(t, tool.Run(context.Background(), NewInput("article"), out))
	assert.Equal(t, []string{"first", "second", "third"}, out.Summary.BulletPoints)
	for _, b := range out.Summary.BulletPoints {
		assert.NotEmpty(t, b)
		assert.False(t, strings.HasPrefix(b, "-"))
		assert.False(t, strings.HasPrefix(b, "•"))
	}
}

func TestRunCompletionFailureDegrades(t *testing.T) {
	completer := &stubCompleter{err: errors.New("model unavailable")}
	tool := New(WithCompleter(completer))
	out := new(Output)
	require.NoError(t, tool.Run(context.Background(), NewInput("article"), out))
	assert.Equal(t, ErrorTopic, out.Summary.Topic)
	require.Len(t, out.Summary.BulletPoints, 1)
	assert.Contains(t, out.Summary.BulletPoints[0], "model unavailable")
}

func TestRunWithoutBackendDegrades(t *testing.T) {
	tool := New()
	out := new(Output)
	require.NoError(t, tool.Run(context.Background(), NewInput("article"), out))
	assert.Equal(t, ErrorTopic, out.Summary.Topic)
}

func TestRunIsIdempotent(t *testing.T) {
	completer := &stubCompleter{response: "- a\n- b\n- c"}
	tool := New(WithCompleter(completer))
	first := new(Output)
	second := new(Output)
	require.NoError(t, tool.Run(context.Background(), NewInput("article"), first))
	require.NoError(t, tool.Run(context.Background(), NewInput("article"), second))
	assert.Equal(t, first, second)
}
