// Package summarize is a capability invoker that condenses an article into
// bullet points through a single text-completion call.
package summarize

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"newssense/schema"
	"newssense/tools"
)

const (
	// SummaryTopic labels a successful summary.
	SummaryTopic = "Custom Article Summary"
	// ErrorTopic labels a degraded summary.
	ErrorTopic = "Summarization Error"

	promptTemplate = "Summarize the following news article into 3-5 bullet points:\n\n%s"
)

// Completer issues one text-completion request.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// OpenAICompleter backs Completer with a chat-completion call.
type OpenAICompleter struct {
	client *openai.Client
	model  string
}

func NewOpenAICompleter(client *openai.Client, model string) *OpenAICompleter {
	return &OpenAICompleter{client: client, model: model}
}

func (c *OpenAICompleter) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

// Input is the schema for a summarization request.
type Input struct {
	schema.Base
	// ArticleText the article body to summarize
	ArticleText string `json:"article_text" jsonschema:"title=article_text,description=The article body to summarize." validate:"required"`
}

func NewInput(text string) *Input {
	return &Input{ArticleText: text}
}

func (s Input) String() string {
	bs, _ := json.Marshal(s)
	return string(bs)
}

// Output is the summary record.
type Output struct {
	schema.Base
	Summary schema.NewsSummary `json:"summary"`
}

func (s Output) String() string {
	bs, _ := json.Marshal(s)
	return string(bs)
}

type Config struct {
	tools.Config
	completer Completer
}

// Tool turns an article into a bullet-point summary.
type Tool struct {
	Config
}

func New(opts ...Option) *Tool {
	ret := new(Tool)
	for _, opt := range opts {
		opt(&ret.Config)
	}
	if ret.Title() == "" {
		ret.SetTitle("SummarizeTool")
	}
	return ret
}

// Run executes the summarization. Completion failures yield a degraded
// single-bullet summary, never an error.
func (t *Tool) Run(ctx context.Context, input *Input, output *Output) error {
	if input == nil || output == nil {
		return errors.New("summarize: nil input or output")
	}
	t.Start(ctx, input)
	text, err := t.complete(ctx, input.ArticleText)
	if err != nil {
		t.Error(ctx, input, err)
		output.Summary = schema.NewsSummary{
			Topic:        ErrorTopic,
			BulletPoints: []string{fmt.Sprintf("Failed to summarize article: %s", err.Error())},
		}
		t.End(ctx, input, output)
		return nil
	}
	output.Summary = schema.NewsSummary{
		Topic:        SummaryTopic,
		BulletPoints: SplitBullets(text),
	}
	t.End(ctx, input, output)
	return nil
}

func (t *Tool) complete(ctx context.Context, articleText string) (string, error) {
	if t.completer == nil {
		return "", errors.New("no completion backend configured")
	}
	return t.completer.Complete(ctx, fmt.Sprintf(promptTemplate, articleText))
}

// SplitBullets splits a completion response into bullet strings: one per
// line, leading bullet/dash markers and whitespace stripped, empties dropped.
func SplitBullets(text string) []string {
	lines := strings.Split(text, "\n")
	bullets := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "-•* \t")
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		bullets = append(bullets, line)
	}
	return bullets
}
