package http_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	webgenius "github.com/Abhishek-yadv/WebGenius"
	webhttp "github.com/Abhishek-yadv/WebGenius/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSitemapDiscoverer_Discover_FromRobots(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	defer srv.Close()

	mux.HandleFunc("/robots.txt", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, "User-agent: *\nSitemap: %s/sitemap.xml\n", srv.URL)
	})
	mux.HandleFunc("/sitemap.xml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/xml")
		fmt.Fprintf(w, `<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <url><loc>%s/docs/intro</loc></url>
  <url><loc>%s/docs/setup#frag</loc></url>
  <url><loc>https://other.com/docs/elsewhere</loc></url>
</urlset>`, srv.URL, srv.URL)
	})

	d := webhttp.NewSitemapDiscoverer(nil)
	section := webgenius.Section{BaseURL: srv.URL, Prefix: "docs"}

	got, err := d.Discover(context.Background(), section)

	require.NoError(t, err)
	assert.Equal(t, []string{srv.URL + "/docs/intro", srv.URL + "/docs/setup"}, got)
}

func TestSitemapDiscoverer_Discover_SitemapIndex(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	defer srv.Close()

	mux.HandleFunc("/sitemap.xml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/xml")
		fmt.Fprintf(w, `<?xml version="1.0" encoding="UTF-8"?>
<sitemapindex xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <sitemap><loc>%s/sitemap-docs.xml</loc></sitemap>
</sitemapindex>`, srv.URL)
	})
	mux.HandleFunc("/sitemap-docs.xml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/xml")
		fmt.Fprintf(w, `<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <url><loc>%s/docs/advanced</loc></url>
</urlset>`, srv.URL)
	})

	d := webhttp.NewSitemapDiscoverer(nil)
	section := webgenius.Section{BaseURL: srv.URL, Prefix: "docs"}

	got, err := d.Discover(context.Background(), section)

	require.NoError(t, err)
	assert.Equal(t, []string{srv.URL + "/docs/advanced"}, got)
}

func TestSitemapDiscoverer_Discover_NoSitemap(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	d := webhttp.NewSitemapDiscoverer(nil)
	section := webgenius.Section{BaseURL: srv.URL, Prefix: "docs"}

	got, err := d.Discover(context.Background(), section)

	require.NoError(t, err)
	assert.Empty(t, got)
}
