package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"newssense/schema"
)

func TestTextTrendingNews(t *testing.T) {
	result := schema.NewTrendingNewsResult([]schema.TrendingNewsItem{
		{Headline: "First", Source: "S1", Category: "tech", Summary: "a", Rank: 1},
		{Headline: "Second", Source: "S2", Category: "tech", Summary: "b", Rank: 2},
	})
	assert.Equal(t, "1. First — S1: a\n2. Second — S2: b", Text(result))
}

func TestTextFactCheck(t *testing.T) {
	result := schema.NewFactCheckResult(&schema.FactCheckResult{
		Verdict: "Supporting sources found",
		Sources: []string{"https://a.example", "https://b.example"},
	})
	assert.Equal(t, "Verdict: Supporting sources found\nSources:\n- https://a.example\n- https://b.example", Text(result))
}

func TestTextFactCheckNoSources(t *testing.T) {
	result := schema.NewFactCheckResult(&schema.FactCheckResult{Verdict: "Unverified claim", Sources: []string{}})
	assert.Equal(t, "Verdict: Unverified claim", Text(result))
}

func TestTextNewsSummary(t *testing.T) {
	result := schema.NewNewsSummaryResult(&schema.NewsSummary{
		Topic:        "Custom Article Summary",
		BulletPoints: []string{"point one", "point two"},
	})
	assert.Equal(t, "Topic: Custom Article Summary\n- point one\n- point two", Text(result))
}

func TestTextClarification(t *testing.T) {
	result := schema.NewClarificationResult("Which one would you like?")
	assert.Equal(t, "Which one would you like?", Text(result))
}

func TestTextFallback(t *testing.T) {
	result := &schema.Result{Kind: schema.ResultKind(99)}
	out := Text(result)
	assert.NotEmpty(t, out)
	assert.Contains(t, out, "kind")
}

func TestTextDeterministic(t *testing.T) {
	result := schema.NewNewsSummaryResult(&schema.NewsSummary{Topic: "t", BulletPoints: []string{"a"}})
	assert.Equal(t, Text(result), Text(result))
}

func TestTextNil(t *testing.T) {
	assert.Empty(t, Text(nil))
}
