// Package render converts typed turn results into display text. It is pure:
// appending the text to a chat history and re-displaying it is the driver's
// job.
package render

import (
	"fmt"
	"strings"

	"newssense/schema"
)

// Text renders a result deterministically. Dispatch is on the explicit Kind
// discriminant; unknown kinds fall back to the generic textual form.
func Text(result *schema.Result) string {
	if result == nil {
		return ""
	}
	switch result.Kind {
	case schema.KindTrendingNews:
		return trendingNews(result.TrendingNews)
	case schema.KindFactCheck:
		if result.FactCheck != nil {
			return factCheck(result.FactCheck)
		}
	case schema.KindNewsSummary:
		if result.Summary != nil {
			return newsSummary(result.Summary)
		}
	case schema.KindClarification:
		return result.Clarification
	}
	return schema.Stringify(result)
}

func trendingNews(items []schema.TrendingNewsItem) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, fmt.Sprintf("%d. %s — %s: %s", item.Rank, item.Headline, item.Source, item.Summary))
	}
	return strings.Join(lines, "\n")
}

func factCheck(v *schema.FactCheckResult) string {
	lines := make([]string, 0, len(v.Sources)+2)
	lines = append(lines, fmt.Sprintf("Verdict: %s", v.Verdict))
	if len(v.Sources) > 0 {
		lines = append(lines, "Sources:")
		for _, src := range v.Sources {
			lines = append(lines, fmt.Sprintf("- %s", src))
		}
	}
	return strings.Join(lines, "\n")
}

func newsSummary(v *schema.NewsSummary) string {
	lines := make([]string, 0, len(v.BulletPoints)+1)
	lines = append(lines, fmt.Sprintf("Topic: %s", v.Topic))
	for _, pt := range v.BulletPoints {
		lines = append(lines, fmt.Sprintf("- %s", pt))
	}
	return strings.Join(lines, "\n")
}
