// Package http provides the direct fetch tier and static link
// discovery for sites that do not require JavaScript rendering.
package http

import (
	"context"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	webgenius "github.com/Abhishek-yadv/WebGenius"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultUserAgent identifies direct-tier requests. Some
// documentation hosts refuse requests without a browser user agent.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/96.0.4664.110 Safari/537.36"

const acceptHeader = "text/html,application/xhtml+xml"

// htmlContentTypes are the content types classified as documents.
// Anything else yields an empty outcome rather than an error.
var htmlContentTypes = map[string]bool{
	"text/html":             true,
	"application/xhtml+xml": true,
	"text/xml":              true,
	"application/xml":       true,
}

// Ensure Fetcher implements webgenius.Fetcher at compile time.
var _ webgenius.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML from URLs using plain HTTP requests. It does
// not execute JavaScript; pages that render their content client-side
// come back empty and are escalated to the render tier by the caller.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent overrides the User-Agent header on every request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		if ua != "" {
			f.userAgent = ua
		}
	}
}

// NewFetcher creates a new HTTP-based Fetcher. The underlying client
// pools connections across the whole crawl.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the URL and classifies the result. Transport
// errors, timeouts, and non-2xx statuses yield a failed outcome;
// non-HTML content types and empty bodies yield an empty outcome.
func (f *Fetcher) Fetch(ctx context.Context, url string) webgenius.FetchOutcome {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return webgenius.FailedOutcome(err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", acceptHeader)

	resp, err := f.client.Do(req)
	if err != nil {
		return webgenius.FailedOutcome(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return webgenius.FailedOutcome(
			webgenius.Errorf(webgenius.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url))
	}

	if !isHTMLContentType(resp.Header.Get("Content-Type")) {
		return webgenius.EmptyOutcome()
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return webgenius.FailedOutcome(err)
	}
	if len(strings.TrimSpace(string(body))) == 0 {
		return webgenius.EmptyOutcome()
	}

	return webgenius.HTMLOutcome(string(body))
}

// isHTMLContentType reports whether the Content-Type header names an
// HTML/XML document. A missing header is treated leniently as HTML.
func isHTMLContentType(header string) bool {
	if strings.TrimSpace(header) == "" {
		return true
	}
	mediaType, _, err := mime.ParseMediaType(header)
	if err != nil {
		return false
	}
	return htmlContentTypes[mediaType]
}

// Close releases idle pooled connections.
func (f *Fetcher) Close() error {
	f.client.CloseIdleConnections()
	return nil
}
