package agents

import (
	"context"
	"fmt"

	"newssense/schema"
	"newssense/session"
)

// ClarificationMessage is returned for utterances that match none of the
// supported intents. Routing fails closed instead of guessing a task.
const ClarificationMessage = "I can help with three things: trending news for a topic, " +
	"fact-checking a claim, or summarizing an article. Which one would you like?"

// Controller is the entry point for one conversation turn. It classifies
// the utterance once, delegates the whole turn to exactly one assistant and
// passes the session context through untouched. It never calls a capability
// invoker directly and never aggregates results across assistants.
type Controller struct {
	classifier Classifier
	trending   *TrendingAssistant
	factCheck  *FactCheckAssistant
	summarizer *SummaryAssistant
}

func NewController(classifier Classifier, trending *TrendingAssistant, factCheck *FactCheckAssistant, summarizer *SummaryAssistant) *Controller {
	return &Controller{
		classifier: classifier,
		trending:   trending,
		factCheck:  factCheck,
		summarizer: summarizer,
	}
}

// Route classifies the utterance and delegates it. A classifier transport
// failure is the only error that surfaces; everything downstream degrades
// into a structurally valid result.
func (c *Controller) Route(ctx context.Context, utterance string, sess *session.Context) (*schema.Result, error) {
	cls, err := c.classifier.Classify(ctx, utterance)
	if err != nil {
		return nil, fmt.Errorf("classify utterance: %w", err)
	}
	switch cls.Intent {
	case IntentTrending:
		return c.trending.Handle(ctx, utterance, cls, sess)
	case IntentFactCheck:
		return c.factCheck.Handle(ctx, utterance, cls, sess)
	case IntentSummarize:
		return c.summarizer.Handle(ctx, utterance, cls, sess)
	}
	return schema.NewClarificationResult(ClarificationMessage), nil
}
