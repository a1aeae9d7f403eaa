package agents

import (
	"context"
	"sort"

	"newssense/schema"
	"newssense/session"
	"newssense/tools/gnews"
)

// DefaultTopic is searched when neither the utterance nor the session
// preferences name one.
const DefaultTopic = "latest"

// TrendingAssistant retrieves trending news stories for a topic. It is
// stateless and bound to exactly one news-search invoker.
type TrendingAssistant struct {
	tool *gnews.Tool
}

func NewTrendingAssistant(tool *gnews.Tool) *TrendingAssistant {
	return &TrendingAssistant{tool: tool}
}

// Handle runs one trending-news turn. The topic falls back to the first
// preferred topic of the session, then to DefaultTopic. The result batch is
// ordered by the invoker's rank (stable on ties, so provider order is kept)
// and renumbered from 1; no rank is invented beyond that.
func (a *TrendingAssistant) Handle(ctx context.Context, utterance string, cls *Classification, sess *session.Context) (*schema.Result, error) {
	topic := ""
	if cls != nil {
		topic = cls.Topic
	}
	if topic == "" && sess != nil {
		if topics := sess.PreferredTopics(); len(topics) > 0 {
			topic = topics[0]
		}
	}
	if topic == "" {
		topic = DefaultTopic
	}
	output := new(gnews.Output)
	if err := a.tool.Run(ctx, gnews.NewInput(topic, ""), output); err != nil {
		return nil, err
	}
	items := output.Items
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Rank < items[j].Rank
	})
	for idx := range items {
		items[idx].Rank = idx + 1
	}
	return schema.NewTrendingNewsResult(items), nil
}
