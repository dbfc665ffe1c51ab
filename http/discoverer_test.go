package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	webgenius "github.com/Abhishek-yadv/WebGenius"
	webhttp "github.com/Abhishek-yadv/WebGenius/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnchorHrefs(t *testing.T) {
	t.Parallel()

	base, err := url.Parse("https://example.com/docs")
	require.NoError(t, err)

	rawHTML := `<html><body>
<a href="/docs/intro">Intro</a>
<a href="/docs/setup#install">Setup</a>
<a href="/docs/intro">Intro again</a>
<a href="#top">Top</a>
<a href="mailto:team@example.com">Mail</a>
<a href="https://other.com/docs">Elsewhere</a>
<a href="advanced">Advanced</a>
</body></html>`

	got := webhttp.AnchorHrefs(rawHTML, base)

	assert.Equal(t, []string{
		"https://example.com/docs/intro",
		"https://example.com/docs/setup",
		"https://example.com/advanced",
	}, got)
}

func TestDiscoverer_Discover(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/docs", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><body>
<a href="/docs/intro">Intro</a>
<a href="/docs/setup">Setup</a>
</body></html>`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	fetcher := webhttp.NewFetcher()
	defer fetcher.Close()

	d := webhttp.NewDiscoverer(fetcher)
	section := webgenius.Section{BaseURL: srv.URL, Prefix: "docs"}

	got, err := d.Discover(context.Background(), section)

	require.NoError(t, err)
	assert.Equal(t, []string{srv.URL + "/docs/intro", srv.URL + "/docs/setup"}, got)
}

func TestDiscoverer_Discover_FetchFailure(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	fetcher := webhttp.NewFetcher()
	defer fetcher.Close()

	d := webhttp.NewDiscoverer(fetcher)
	section := webgenius.Section{BaseURL: srv.URL, Prefix: "docs"}

	_, err := d.Discover(context.Background(), section)

	assert.Error(t, err)
}

func TestDiscoverer_Discover_EmptyResponse(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("{}"))
	}))
	defer srv.Close()

	fetcher := webhttp.NewFetcher()
	defer fetcher.Close()

	d := webhttp.NewDiscoverer(fetcher)
	section := webgenius.Section{BaseURL: srv.URL, Prefix: "docs"}

	got, err := d.Discover(context.Background(), section)

	require.NoError(t, err)
	assert.Empty(t, got)
}
