package rod

import (
	"context"
	"strings"
	"sync"
	"time"

	webgenius "github.com/Abhishek-yadv/WebGenius"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultFetchTimeout bounds one rendered page load.
const DefaultFetchTimeout = 45 * time.Second

// DefaultContentWait bounds the wait for a known content container
// after navigation. Absence of the container is not an error.
const DefaultContentWait = 3 * time.Second

// contentSelector matches the containers documentation frameworks
// render their content into.
const contentSelector = "main, article, div.content, div.documentation"

// blockedResourceTypes are failed at the network-interception layer.
// Rendered fetches only need the DOM, so page weight that does not
// affect it is dropped to cut load time.
var blockedResourceTypes = map[proto.NetworkResourceType]bool{
	proto.NetworkResourceTypeImage:      true,
	proto.NetworkResourceTypeStylesheet: true,
	proto.NetworkResourceTypeFont:       true,
	proto.NetworkResourceTypeMedia:      true,
	proto.NetworkResourceTypePing:       true,
	proto.NetworkResourceTypePrefetch:   true,
	proto.NetworkResourceTypeTextTrack:  true,
	proto.NetworkResourceTypeManifest:   true,
}

// Ensure Fetcher implements webgenius.Fetcher at compile time.
var _ webgenius.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML through a headless browser. One
// incognito browser context is shared by all fetches of a crawl,
// created lazily on first use; each fetch opens and closes its own
// page. Fetcher is safe for concurrent use.
type Fetcher struct {
	manager     *Manager
	timeout     time.Duration
	contentWait time.Duration
	userAgent   string

	mu      sync.Mutex
	browser *rod.Browser
	router  *rod.HijackRouter
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the per-page navigation timeout.
// Defaults to DefaultFetchTimeout (45s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithContentWait sets the bounded wait for the content container.
func WithContentWait(d time.Duration) Option {
	return func(f *Fetcher) {
		f.contentWait = d
	}
}

// WithUserAgent overrides the browser user agent on every page.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a render-tier Fetcher on top of a browser
// Manager. Close must be called once per crawl to release the shared
// browser context.
func NewFetcher(manager *Manager, opts ...Option) *Fetcher {
	f := &Fetcher{
		manager:     manager,
		timeout:     DefaultFetchTimeout,
		contentWait: DefaultContentWait,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// sharedContext returns the crawl's incognito browser context,
// creating it and its resource-blocking router on first use.
func (f *Fetcher) sharedContext() (*rod.Browser, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.browser != nil {
		return f.browser, nil
	}

	incognito, err := f.manager.Browser().Incognito()
	if err != nil {
		return nil, err
	}

	router := incognito.HijackRequests()
	err = router.Add("*", "", func(h *rod.Hijack) {
		if blockedResourceTypes[h.Request.Type()] {
			h.Response.Fail(proto.NetworkErrorReasonBlockedByClient)
			return
		}
		h.ContinueRequest(&proto.FetchContinueRequest{})
	})
	if err != nil {
		return nil, err
	}
	go router.Run()

	f.browser = incognito
	f.router = router
	return f.browser, nil
}

// Fetch renders the URL and returns the resulting DOM as HTML. The
// page is closed after use.
func (f *Fetcher) Fetch(ctx context.Context, url string) webgenius.FetchOutcome {
	if err := ctx.Err(); err != nil {
		return webgenius.FailedOutcome(err)
	}

	browser, err := f.sharedContext()
	if err != nil {
		return webgenius.FailedOutcome(err)
	}

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return webgenius.FailedOutcome(err)
	}
	defer page.Close()

	page = page.Context(ctx).Timeout(f.timeout)

	if f.userAgent != "" {
		if err := page.SetUserAgent(&proto.NetworkSetUserAgentOverride{UserAgent: f.userAgent}); err != nil {
			return webgenius.FailedOutcome(err)
		}
	}

	wait := page.WaitNavigation(proto.PageLifecycleEventNameDOMContentLoaded)
	if err := page.Navigate(url); err != nil {
		return webgenius.FailedOutcome(err)
	}
	wait()

	// Give client-side frameworks a bounded window to mount content.
	_, _ = page.Timeout(f.contentWait).Element(contentSelector)

	html, err := page.HTML()
	if err != nil {
		return webgenius.FailedOutcome(err)
	}
	f.manager.IncrementPageCount()

	if strings.TrimSpace(html) == "" {
		return webgenius.EmptyOutcome()
	}
	return webgenius.HTMLOutcome(html)
}

// Close disposes the shared browser context. The Fetcher can be
// reused afterwards; a new context is created on the next fetch.
func (f *Fetcher) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.browser == nil {
		return nil
	}
	if f.router != nil {
		_ = f.router.Stop()
		f.router = nil
	}

	err := proto.TargetDisposeBrowserContext{
		BrowserContextID: f.browser.BrowserContextID,
	}.Call(f.browser)
	f.browser = nil
	return err
}
