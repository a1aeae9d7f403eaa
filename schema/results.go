package schema

import "encoding/json"

// TrendingNewsItem is one ranked news result from the news-search capability.
// Items are immutable once produced and are discarded after rendering.
type TrendingNewsItem struct {
	Base
	// Headline the article headline
	Headline string `json:"headline" jsonschema:"title=headline,description=The article headline." validate:"required"`
	// Source the publisher name
	Source string `json:"source" jsonschema:"title=source,description=The publisher of the article."`
	// Category is a best-effort label, not a controlled vocabulary. It
	// defaults to the literal query string used for the search.
	Category string `json:"category" jsonschema:"title=category,description=Best-effort topic label for the article."`
	// Summary a short description of the article
	Summary string `json:"summary" jsonschema:"title=summary,description=A short description of the article."`
	// Rank relevance rank, unique and ascending within a batch, starting at 1
	Rank int `json:"rank" jsonschema:"title=rank,description=Relevance rank within the batch starting at 1." validate:"gte=1"`
}

func (s TrendingNewsItem) String() string {
	bs, _ := json.Marshal(s)
	return string(bs)
}

// FactCheckResult is the outcome of checking one user-submitted claim.
// IsTrue stays nil unless truth was explicitly determined; the capability
// layer never determines it itself.
type FactCheckResult struct {
	Base
	// IsTrue truth value of the claim, nil when undetermined
	IsTrue *bool `json:"is_true" jsonschema:"title=is_true,description=Truth value of the claim when explicitly determined."`
	// Verdict free-text verdict for the claim
	Verdict string `json:"verdict" jsonschema:"title=verdict,description=Free-text verdict for the claim." validate:"required"`
	// Sources up to 3 source URLs supporting the verdict, in provider order
	Sources []string `json:"sources" jsonschema:"title=sources,description=Up to 3 source URLs supporting the verdict." validate:"max=3"`
}

func (s FactCheckResult) String() string {
	bs, _ := json.Marshal(s)
	return string(bs)
}

// NewsSummary is a condensed article as bullet points.
type NewsSummary struct {
	Base
	// Topic label for the summarized content
	Topic string `json:"topic" jsonschema:"title=topic,description=Label for the summarized content." validate:"required"`
	// BulletPoints summary bullets, 3-5 expected, each non-empty
	BulletPoints []string `json:"bullet_points" jsonschema:"title=bullet_points,description=Summary bullet points." validate:"dive,required"`
}

func (s NewsSummary) String() string {
	bs, _ := json.Marshal(s)
	return string(bs)
}
