package agents

import (
	"context"

	"newssense/schema"
	"newssense/session"
	"newssense/tools/summarize"
)

// SummaryAssistant condenses an article into 3-5 bullet points through one
// completion call.
type SummaryAssistant struct {
	tool *summarize.Tool
}

func NewSummaryAssistant(tool *summarize.Tool) *SummaryAssistant {
	return &SummaryAssistant{tool: tool}
}

// Handle runs one summarization turn. When the classifier extracted no
// article text, the leading "summarize this article:" phrasing is stripped
// from the utterance; if nothing remains the whole utterance is used.
func (a *SummaryAssistant) Handle(ctx context.Context, utterance string, cls *Classification, _ *session.Context) (*schema.Result, error) {
	text := ""
	if cls != nil {
		text = cls.ArticleText
	}
	if text == "" {
		text = summarizeLeadRe.ReplaceAllString(utterance, "")
	}
	if text == "" {
		text = utterance
	}
	output := new(summarize.Output)
	if err := a.tool.Run(ctx, summarize.NewInput(text), output); err != nil {
		return nil, err
	}
	summary := output.Summary
	return schema.NewNewsSummaryResult(&summary), nil
}
