// Package gnews is a capability invoker for keyword news search against a
// GNews-compatible API.
package gnews

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"newssense/schema"
	"newssense/tools"
)

const (
	// DefaultBaseURL is the GNews v4 API endpoint.
	DefaultBaseURL = "https://gnews.io/api/v4"
	// DefaultQuery is used when no topic was supplied.
	DefaultQuery = "breaking"

	defaultLanguage   = "en"
	defaultMaxResults = 5
	defaultTimeout    = 15 * time.Second
)

// Input is the schema for a trending news search.
type Input struct {
	schema.Base
	// Topic keyword to search news for
	Topic string `json:"topic,omitempty" jsonschema:"title=topic,description=Keyword to search news for."`
	// Category optional label applied to the results. Best-effort only:
	// when empty the literal topic string is used.
	Category string `json:"category,omitempty" jsonschema:"title=category,description=Optional label applied to the results."`
}

func NewInput(topic, category string) *Input {
	return &Input{Topic: topic, Category: category}
}

func (s Input) String() string {
	bs, _ := json.Marshal(s)
	return string(bs)
}

// Output is a batch of ranked news items. On provider failure it carries a
// single synthetic item describing the condition.
type Output struct {
	schema.Base
	// Items ranked news results, rank ascending starting at 1
	Items []schema.TrendingNewsItem `json:"items" jsonschema:"title=items,description=Ranked news results."`
}

func (s Output) String() string {
	bs, _ := json.Marshal(s)
	return string(bs)
}

// article mirrors the provider payload.
type article struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Source      struct {
		Name string `json:"name"`
	} `json:"source"`
}

type searchResponse struct {
	Articles []article `json:"articles"`
}

type Config struct {
	tools.Config
	baseURL    string
	apiKey     string
	language   string
	maxResults int
	httpClient *http.Client
}

// Tool performs bounded-size keyword searches against the news provider.
type Tool struct {
	Config
}

func New(opts ...Option) *Tool {
	ret := new(Tool)
	for _, opt := range opts {
		opt(&ret.Config)
	}
	if ret.Title() == "" {
		ret.SetTitle("TrendingNewsTool")
	}
	if ret.baseURL == "" {
		ret.baseURL = DefaultBaseURL
	}
	if ret.language == "" {
		ret.language = defaultLanguage
	}
	if ret.maxResults == 0 {
		ret.maxResults = defaultMaxResults
	}
	if ret.httpClient == nil {
		ret.httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return ret
}

// Run executes the news search. Provider failures and empty result sets are
// reported as a single synthetic item, never as an error.
func (t *Tool) Run(ctx context.Context, input *Input, output *Output) error {
	if input == nil || output == nil {
		return errors.New("gnews: nil input or output")
	}
	t.Start(ctx, input)
	label := input.Category
	if label == "" {
		label = input.Topic
	}
	if label == "" {
		label = DefaultQuery
	}
	items, err := t.fetchArticles(ctx, input.Topic)
	if err != nil {
		t.Error(ctx, input, err)
		output.Items = []schema.TrendingNewsItem{{
			Headline: "Error fetching news",
			Source:   "System",
			Category: label,
			Summary:  err.Error(),
			Rank:     1,
		}}
		t.End(ctx, input, output)
		return nil
	}
	if len(items) == 0 {
		output.Items = []schema.TrendingNewsItem{{
			Headline: "No news found",
			Source:   "GNews",
			Category: label,
			Summary:  "No articles found for this topic.",
			Rank:     1,
		}}
		t.End(ctx, input, output)
		return nil
	}
	output.Items = make([]schema.TrendingNewsItem, 0, len(items))
	for idx, a := range items {
		headline := a.Title
		if headline == "" {
			headline = "No headline"
		}
		source := a.Source.Name
		if source == "" {
			source = "Unknown"
		}
		output.Items = append(output.Items, schema.TrendingNewsItem{
			Headline: headline,
			Source:   source,
			Category: label,
			Summary:  a.Description,
			Rank:     idx + 1,
		})
	}
	t.End(ctx, input, output)
	return nil
}

// fetchArticles queries the provider and returns the parsed article list.
func (t *Tool) fetchArticles(ctx context.Context, topic string) ([]article, error) {
	query := topic
	if query == "" {
		query = DefaultQuery
	}
	values := url.Values{}
	values.Set("q", query)
	values.Set("lang", t.language)
	values.Set("max", fmt.Sprintf("%d", t.maxResults))
	if t.apiKey != "" {
		values.Set("token", t.apiKey)
	}
	searchURL := fmt.Sprintf("%s/search?%s", t.baseURL, values.Encode())
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, err
	}
	httpResp, err := t.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()
	if httpResp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(httpResp.Body, 512))
		return nil, fmt.Errorf("API error %d: %s", httpResp.StatusCode, body)
	}
	var res searchResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&res); err != nil {
		return nil, err
	}
	return res.Articles, nil
}
