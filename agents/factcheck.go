package agents

import (
	"context"

	"newssense/schema"
	"newssense/session"
	"newssense/tools/customsearch"
)

// FactCheckAssistant verifies a user-submitted claim against web sources.
// It never determines truth itself; the verdict only reports whether
// supporting sources exist.
type FactCheckAssistant struct {
	tool *customsearch.Tool
}

func NewFactCheckAssistant(tool *customsearch.Tool) *FactCheckAssistant {
	return &FactCheckAssistant{tool: tool}
}

// Handle runs one fact-check turn. When the classifier extracted no claim
// the whole utterance is treated as the claim.
func (a *FactCheckAssistant) Handle(ctx context.Context, utterance string, cls *Classification, _ *session.Context) (*schema.Result, error) {
	claim := ""
	if cls != nil {
		claim = cls.Claim
	}
	if claim == "" {
		claim = utterance
	}
	output := new(customsearch.Output)
	if err := a.tool.Run(ctx, customsearch.NewInput(claim), output); err != nil {
		return nil, err
	}
	result := output.Result
	return schema.NewFactCheckResult(&result), nil
}
