package agents

import (
	"context"
	"encoding/json"
	"regexp"
	"strings"

	"newssense/components"
	"newssense/components/systemprompt/simple"
	"newssense/schema"
)

// Intent is the classified purpose of a user utterance. The enumeration is
// closed: anything that matches none of the three supported tasks is
// explicitly unrecognized, never guessed.
type Intent string

const (
	IntentTrending     Intent = "trending"
	IntentFactCheck    Intent = "fact_check"
	IntentSummarize    Intent = "summarize"
	IntentUnrecognized Intent = "unrecognized"
)

// Classification is the single routing decision for one utterance, with the
// arguments the classifier could extract for the chosen task.
type Classification struct {
	schema.Base
	// Intent the classified purpose of the utterance
	Intent Intent `json:"intent" jsonschema:"title=intent,enum=trending,enum=fact_check,enum=summarize,enum=unrecognized,description=The classified purpose of the utterance." validate:"required,oneof=trending fact_check summarize unrecognized"`
	// Topic extracted news topic for a trending query
	Topic string `json:"topic,omitempty" jsonschema:"title=topic,description=Extracted news topic for a trending query."`
	// Claim extracted claim text for a fact-check request
	Claim string `json:"claim,omitempty" jsonschema:"title=claim,description=Extracted claim text for a fact-check request."`
	// ArticleText extracted article body for a summarization request
	ArticleText string `json:"article_text,omitempty" jsonschema:"title=article_text,description=Extracted article body for a summarization request."`
}

func (s Classification) String() string {
	bs, _ := json.Marshal(s)
	return string(bs)
}

// Classifier makes the one routing decision per turn.
type Classifier interface {
	Classify(ctx context.Context, utterance string) (*Classification, error)
}

const classifierPrompt = `You are the entry point for NewsSense, a news assistant.
Classify the user's message into exactly one intent:
- "trending": the user wants trending or latest news stories, optionally for a topic.
- "fact_check": the user wants a claim verified against web sources.
- "summarize": the user wants an article or text condensed into bullet points.
- "unrecognized": the message fits none of the above. Never guess.

Also extract the argument for the chosen intent: the news topic, the claim
text, or the article text to summarize. Leave the other fields empty.`

// LLMClassifier delegates the routing decision to a language model with a
// structured output schema.
type LLMClassifier struct {
	agent      *Agent[schema.Input, Classification]
	onResponse func(*components.ApiResponse)
}

var _ Classifier = (*LLMClassifier)(nil)

// NewLLMClassifier returns a Classifier backed by an instructor client.
func NewLLMClassifier(options ...Option) *LLMClassifier {
	options = append(options, WithSystemPromptGenerator(simple.New(classifierPrompt)))
	return &LLMClassifier{
		agent: NewAgent[schema.Input, Classification](options...),
	}
}

// SetResponseHook registers an observer for the raw provider response of
// every classification call.
func (c *LLMClassifier) SetResponseHook(fn func(*components.ApiResponse)) {
	c.onResponse = fn
}

// Classify makes one structured-output call. The classification is a single
// per-utterance decision, so the agent memory is reset before every call.
func (c *LLMClassifier) Classify(ctx context.Context, utterance string) (*Classification, error) {
	c.agent.ResetMemory()
	out := new(Classification)
	apiResp := new(components.ApiResponse)
	if err := c.agent.Run(ctx, schema.NewInput(utterance), out, apiResp); err != nil {
		return nil, err
	}
	if fn := c.onResponse; fn != nil {
		fn(apiResp)
	}
	if out.Intent == "" {
		out.Intent = IntentUnrecognized
	}
	return out, nil
}

var (
	trendingTopicRe  = regexp.MustCompile(`(?i)trending\s+(?:in|on|about|for)\s+([a-z0-9][a-z0-9 ]*?)(?:\s+(?:today|now|this week))?\s*\??$`)
	summarizeLeadRe  = regexp.MustCompile(`(?i)^\s*summar(?:ize|ise|y)(?:\s+this)?(?:\s+(?:article|text|news|story))?\s*[:\-]?\s*`)
	factCheckLeadRe  = regexp.MustCompile(`(?i)^\s*(?:did|is|was|are|were|has|have|can|does)\b`)
	factCheckWordsRe = regexp.MustCompile(`(?i)\b(?:fact.?check|is it true|true that|verify|really)\b`)
	trendingWordsRe  = regexp.MustCompile(`(?i)\b(?:trending|headlines?|latest news|top news|breaking|what'?s new)\b`)
)

// KeywordClassifier is a deterministic offline classifier. It mirrors the
// LLM classifier's contract so the two are interchangeable.
type KeywordClassifier struct{}

var _ Classifier = (*KeywordClassifier)(nil)

func NewKeywordClassifier() *KeywordClassifier {
	return &KeywordClassifier{}
}

func (c *KeywordClassifier) Classify(_ context.Context, utterance string) (*Classification, error) {
	trimmed := strings.TrimSpace(utterance)
	switch {
	case summarizeLeadRe.MatchString(trimmed):
		return &Classification{
			Intent:      IntentSummarize,
			ArticleText: summarizeLeadRe.ReplaceAllString(trimmed, ""),
		}, nil
	case factCheckWordsRe.MatchString(trimmed), factCheckLeadRe.MatchString(trimmed):
		return &Classification{
			Intent: IntentFactCheck,
			Claim:  trimmed,
		}, nil
	case trendingWordsRe.MatchString(trimmed):
		cls := &Classification{Intent: IntentTrending}
		if m := trendingTopicRe.FindStringSubmatch(trimmed); m != nil {
			cls.Topic = strings.TrimSpace(m[1])
		}
		return cls, nil
	}
	return &Classification{Intent: IntentUnrecognized}, nil
}
