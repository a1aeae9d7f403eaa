package schema

import "encoding/json"

// ResultKind discriminates the result variants produced by a conversation
// turn. Rendering dispatches on it explicitly instead of probing fields.
type ResultKind int

const (
	KindTrendingNews ResultKind = iota + 1
	KindFactCheck
	KindNewsSummary
	KindClarification
)

func (k ResultKind) String() string {
	switch k {
	case KindTrendingNews:
		return "trending_news"
	case KindFactCheck:
		return "fact_check"
	case KindNewsSummary:
		return "news_summary"
	case KindClarification:
		return "clarification"
	}
	return "unknown"
}

// Result is the tagged union returned by the controller for one turn.
// Exactly the variant named by Kind is populated.
type Result struct {
	Base
	Kind          ResultKind         `json:"kind"`
	TrendingNews  []TrendingNewsItem `json:"trending_news,omitempty"`
	FactCheck     *FactCheckResult   `json:"fact_check,omitempty"`
	Summary       *NewsSummary       `json:"summary,omitempty"`
	Clarification string             `json:"clarification,omitempty"`
}

// NewTrendingNewsResult wraps a batch of trending news items.
func NewTrendingNewsResult(items []TrendingNewsItem) *Result {
	return &Result{Kind: KindTrendingNews, TrendingNews: items}
}

// NewFactCheckResult wraps a fact-check outcome.
func NewFactCheckResult(v *FactCheckResult) *Result {
	return &Result{Kind: KindFactCheck, FactCheck: v}
}

// NewNewsSummaryResult wraps an article summary.
func NewNewsSummaryResult(v *NewsSummary) *Result {
	return &Result{Kind: KindNewsSummary, Summary: v}
}

// NewClarificationResult wraps a clarification message for utterances that
// match none of the supported intents.
func NewClarificationResult(msg string) *Result {
	return &Result{Kind: KindClarification, Clarification: msg}
}

func (s Result) String() string {
	bs, _ := json.Marshal(s)
	return string(bs)
}
