package gnews

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newsServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestRunRanksArticles(t *testing.T) {
	srv := newsServer(t, http.StatusOK, `{"totalArticles":2,"articles":[
		{"title":"OpenAI ships new model","description":"Release day.","source":{"name":"TechCrunch"}},
		{"title":"Chip makers rally","description":"Semis up.","source":{"name":"Reuters"}}]}`)
	tool := New(WithBaseURL(srv.URL), WithAPIKey("test-key"))
	out := new(Output)
	require.NoError(t, tool.Run(context.Background(), NewInput("tech", ""), out))
	require.Len(t, out.Items, 2)
	assert.Equal(t, 1, out.Items[0].Rank)
	assert.Equal(t, 2, out.Items[1].Rank)
	assert.Equal(t, "OpenAI ships new model", out.Items[0].Headline)
	assert.Equal(t, "TechCrunch", out.Items[0].Source)
	assert.Equal(t, "tech", out.Items[0].Category)
	assert.Equal(t, "tech", out.Items[1].Category)
}

func TestRunServerErrorDegrades(t *testing.T) {
	srv := newsServer(t, http.StatusInternalServerError, `boom`)
	tool := New(WithBaseURL(srv.URL))
	out := new(Output)
	require.NoError(t, tool.Run(context.Background(), NewInput("tech", ""), out))
	require.Len(t, out.Items, 1)
	assert.Equal(t, "Error fetching news", out.Items[0].Headline)
	assert.Equal(t, 1, out.Items[0].Rank)
	assert.Contains(t, out.Items[0].Summary, "API error 500")
}

func TestRunEmptyBatchDegrades(t *testing.T) {
	srv := newsServer(t, http.StatusOK, `{"totalArticles":0,"articles":[]}`)
	tool := New(WithBaseURL(srv.URL))
	out := new(Output)
	require.NoError(t, tool.Run(context.Background(), NewInput("underwater basket weaving", ""), out))
	require.Len(t, out.Items, 1)
	assert.Equal(t, "No news found", out.Items[0].Headline)
	assert.Equal(t, "No articles found for this topic.", out.Items[0].Summary)
}

func TestRunIsIdempotent(t *testing.T) {
	srv := newsServer(t, http.StatusOK, `{"articles":[{"title":"A","description":"a","source":{"name":"S"}}]}`)
	tool := New(WithBaseURL(srv.URL))
	first := new(Output)
	second := new(Output)
	require.NoError(t, tool.Run(context.Background(), NewInput("tech", ""), first))
	require.NoError(t, tool.Run(context.Background(), NewInput("tech", ""), second))
	assert.Equal(t, first, second)
}

func TestRunNilArguments(t *testing.T) {
	tool := New()
	assert.Error(t, tool.Run(context.Background(), nil, new(Output)))
	assert.Error(t, tool.Run(context.Background(), NewInput("tech", ""), nil))
}
