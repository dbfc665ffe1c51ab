package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	webgenius "github.com/Abhishek-yadv/WebGenius"
	webhttp "github.com/Abhishek-yadv/WebGenius/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Fetch_HTML(t *testing.T) {
	t.Parallel()

	var gotUA, gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept")
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte("<html><body>hello</body></html>"))
	}))
	defer srv.Close()

	f := webhttp.NewFetcher()
	defer f.Close()

	outcome := f.Fetch(context.Background(), srv.URL)

	require.Equal(t, webgenius.OutcomeHTML, outcome.Kind)
	assert.Contains(t, outcome.HTML, "hello")
	assert.Equal(t, webhttp.DefaultUserAgent, gotUA)
	assert.Equal(t, "text/html,application/xhtml+xml", gotAccept)
}

func TestFetcher_Fetch_NotFound(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	f := webhttp.NewFetcher()
	defer f.Close()

	outcome := f.Fetch(context.Background(), srv.URL)

	require.Equal(t, webgenius.OutcomeFailed, outcome.Kind)
	assert.Equal(t, webgenius.EUNAVAILABLE, webgenius.ErrorCode(outcome.Err))
	assert.Contains(t, outcome.Err.Error(), "HTTP 404")
}

func TestFetcher_Fetch_NonHTMLContentType(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"not":"html"}`))
	}))
	defer srv.Close()

	f := webhttp.NewFetcher()
	defer f.Close()

	outcome := f.Fetch(context.Background(), srv.URL)

	assert.Equal(t, webgenius.OutcomeEmpty, outcome.Kind)
}

func TestFetcher_Fetch_EmptyBody(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
	}))
	defer srv.Close()

	f := webhttp.NewFetcher()
	defer f.Close()

	outcome := f.Fetch(context.Background(), srv.URL)

	assert.Equal(t, webgenius.OutcomeEmpty, outcome.Kind)
}

func TestFetcher_Fetch_UserAgentOverride(t *testing.T) {
	t.Parallel()

	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html><body>custom agent page</body></html>"))
	}))
	defer srv.Close()

	f := webhttp.NewFetcher(webhttp.WithUserAgent("docbot/1.0"))
	defer f.Close()

	outcome := f.Fetch(context.Background(), srv.URL)

	require.Equal(t, webgenius.OutcomeHTML, outcome.Kind)
	assert.Equal(t, "docbot/1.0", gotUA)
}
