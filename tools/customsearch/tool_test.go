package customsearch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func searchServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestRunUnverifiedClaim(t *testing.T) {
	srv := searchServer(t, http.StatusOK, `{}`)
	tool := New(WithBaseURL(srv.URL))
	out := new(Output)
	require.NoError(t, tool.Run(context.Background(), NewInput("Did Apple acquire OpenAI?"), out))
	assert.Nil(t, out.Result.IsTrue)
	assert.Equal(t, VerdictUnverified, out.Result.Verdict)
	assert.Empty(t, out.Result.Sources)
}

func TestRunSupportingSourcesCapped(t *testing.T) {
	srv := searchServer(t, http.StatusOK, `{"items":[
		{"link":"https://a.example"},
		{"link":"https://b.example"},
		{"link":"https://c.example"},
		{"link":"https://d.example"}]}`)
	tool := New(WithBaseURL(srv.URL))
	out := new(Output)
	require.NoError(t, tool.Run(context.Background(), NewInput("water is wet"), out))
	assert.Nil(t, out.Result.IsTrue)
	assert.Equal(t, VerdictSupported, out.Result.Verdict)
	assert.Equal(t, []string{"https://a.example", "https://b.example", "https://c.example"}, out.Result.Sources)
}

func TestRunSingleSource(t *testing.T) {
	srv := searchServer(t, http.StatusOK, `{"items":[{"link":"https://a.example"}]}`)
	tool := New(WithBaseURL(srv.URL))
	out := new(Output)
	require.NoError(t, tool.Run(context.Background(), NewInput("claim"), out))
	assert.Equal(t, VerdictSupported, out.Result.Verdict)
	assert.Len(t, out.Result.Sources, 1)
}

func TestRunServerErrorDegrades(t *testing.T) {
	srv := searchServer(t, http.StatusInternalServerError, `boom`)
	tool := New(WithBaseURL(srv.URL))
	out := new(Output)
	require.NoError(t, tool.Run(context.Background(), NewInput("claim"), out))
	assert.Nil(t, out.Result.IsTrue)
	assert.Contains(t, out.Result.Verdict, "Error:")
	assert.Contains(t, out.Result.Verdict, "500")
	assert.Empty(t, out.Result.Sources)
}

func TestRunIsIdempotent(t *testing.T) {
	srv := searchServer(t, http.StatusOK, `{"items":[{"link":"https://a.example"}]}`)
	tool := New(WithBaseURL(srv.URL))
	first := new(Output)
	second := new(Output)
	require.NoError(t, tool.Run(context.Background(), NewInput("claim"), first))
	require.NoError(t, tool.Run(context.Background(), NewInput("claim"), second))
	assert.Equal(t, first, second)
}
