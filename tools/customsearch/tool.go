// Package customsearch is a capability invoker that looks up supporting web
// sources for a claim through a Google Custom Search compatible API.
package customsearch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"newssense/schema"
	"newssense/tools"
)

const (
	// DefaultBaseURL is the Google Custom Search JSON API endpoint.
	DefaultBaseURL = "https://www.googleapis.com/customsearch/v1"

	// VerdictUnverified is returned when the search yields zero results.
	VerdictUnverified = "Unverified claim"
	// VerdictSupported is returned when at least one source was found.
	VerdictSupported = "Supporting sources found"

	maxSources     = 3
	defaultTimeout = 15 * time.Second
)

// Input is the schema for a claim lookup.
type Input struct {
	schema.Base
	// Claim the literal claim text to search for
	Claim string `json:"claim" jsonschema:"title=claim,description=The literal claim text to search for." validate:"required"`
}

func NewInput(claim string) *Input {
	return &Input{Claim: claim}
}

func (s Input) String() string {
	bs, _ := json.Marshal(s)
	return string(bs)
}

// Output is the fact-check record for one claim. The truth value is never
// computed here; IsTrue stays nil.
type Output struct {
	schema.Base
	Result schema.FactCheckResult `json:"result"`
}

func (s Output) String() string {
	bs, _ := json.Marshal(s)
	return string(bs)
}

type searchItem struct {
	Link string `json:"link"`
}

type searchResponse struct {
	Items []searchItem `json:"items"`
}

type Config struct {
	tools.Config
	baseURL        string
	apiKey         string
	searchEngineID string
	httpClient     *http.Client
}

// Tool searches the web for a claim and derives a two-valued verdict from
// the presence of results.
type Tool struct {
	Config
}

func New(opts ...Option) *Tool {
	ret := new(Tool)
	for _, opt := range opts {
		opt(&ret.Config)
	}
	if ret.Title() == "" {
		ret.SetTitle("FactCheckTool")
	}
	if ret.baseURL == "" {
		ret.baseURL = DefaultBaseURL
	}
	if ret.httpClient == nil {
		ret.httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return ret
}

// Run executes the claim lookup. Provider failures yield a degraded verdict
// describing the failure, never an error.
func (t *Tool) Run(ctx context.Context, input *Input, output *Output) error {
	if input == nil || output == nil {
		return errors.New("customsearch: nil input or output")
	}
	t.Start(ctx, input)
	links, err := t.fetchLinks(ctx, input.Claim)
	if err != nil {
		t.Error(ctx, input, err)
		output.Result = schema.FactCheckResult{
			Verdict: fmt.Sprintf("Error: %s", err.Error()),
			Sources: []string{},
		}
		t.End(ctx, input, output)
		return nil
	}
	verdict := VerdictSupported
	if len(links) == 0 {
		verdict = VerdictUnverified
	}
	if len(links) > maxSources {
		links = links[:maxSources]
	}
	output.Result = schema.FactCheckResult{
		Verdict: verdict,
		Sources: links,
	}
	t.End(ctx, input, output)
	return nil
}

// fetchLinks queries the provider and returns the result links in order.
func (t *Tool) fetchLinks(ctx context.Context, claim string) ([]string, error) {
	values := url.Values{}
	values.Set("q", claim)
	if t.apiKey != "" {
		values.Set("key", t.apiKey)
	}
	if t.searchEngineID != "" {
		values.Set("cx", t.searchEngineID)
	}
	searchURL := fmt.Sprintf("%s?%s", t.baseURL, values.Encode())
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
		return nil, fmt.Errorf("unexpected status %d from search provider", httpResp.StatusCode)
	}
	var res searchResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&res); err != nil {
		return nil, err
	}
	links := make([]string, 0, len(res.Items))
	for _, item := range res.Items {
		links = append(links, item.Link)
	}
	return links, nil
}
