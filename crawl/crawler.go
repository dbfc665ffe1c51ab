// Package crawl orchestrates section crawling: escalating link
// discovery, a bounded fan-out of fetch+convert+clean page tasks, and
// assembly of the discovery-ordered section result.
package crawl

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	webgenius "github.com/Abhishek-yadv/WebGenius"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// errorMarkerFormat is the visible marker recorded for a page whose
// fetch failed on every tier. The crawl itself never aborts for a
// single page.
const errorMarkerFormat = "⚠️ Failed to load or extract content from %s: %v"

// errorPageTitle is the title recorded for failed pages.
const errorPageTitle = "Error Page"

// Crawler orchestrates a section crawl. Direct, Static, Converter,
// and Cleaner are required; the render-tier fields and the remaining
// collaborators are optional.
type Crawler struct {
	// Fetch tiers. Render may be nil, disabling escalation.
	Direct webgenius.Fetcher
	Render webgenius.Fetcher

	// Discovery strategies, tried in order: Sitemaps (when set),
	// Static, then Rendered, escalating while a strategy fails or
	// yields nothing.
	Sitemaps webgenius.Discoverer
	Static   webgenius.Discoverer
	Rendered webgenius.Discoverer

	Converter webgenius.Converter
	Cleaner   webgenius.Cleaner

	RateLimiter webgenius.DomainLimiter
	RetryDelays []time.Duration
	Config      Config
	Logger      *slog.Logger
}

// ProgressEvent reports progress during a crawl.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting crawl progress.
type ProgressFunc func(event ProgressEvent)

// pageResult holds the outcome of processing a single URL.
type pageResult struct {
	position int
	url      string
	markdown string
	err      error
}

// CrawlSection crawls every page under a section and returns the
// discovery-ordered result. Only an invalid section is a hard
// failure; page-level errors are recorded as failed pages with a
// visible error marker, and pages with too little content are
// dropped.
func (c *Crawler) CrawlSection(ctx context.Context, section webgenius.Section, progress ProgressFunc) (*webgenius.SectionResult, error) {
	if err := section.Validate(); err != nil {
		return nil, err
	}
	cfg := c.Config.normalize()

	urls := c.discoverLinks(ctx, section, cfg).URLs()
	total := len(urls)

	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	resultCh := make(chan pageResult, total)
	var completed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.MaxConcurrency)

	go func() {
		for i, pageURL := range urls {
			i, pageURL := i, pageURL
			g.Go(func() error {
				resultCh <- c.processPage(gctx, i, pageURL, cfg)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	// Completion order is unconstrained; re-key into discovery order.
	results := make([]pageResult, total)
	for result := range resultCh {
		completed.Add(1)
		results[result.position] = result

		if progress != nil {
			event := ProgressEvent{
				Completed: int(completed.Load()),
				Total:     total,
				URL:       result.url,
			}
			if result.err != nil {
				event.Type = ProgressFailed
				event.Error = result.err
			} else {
				event.Type = ProgressCompleted
			}
			progress(event)
		}
	}

	sectionResult := &webgenius.SectionResult{Section: section}
	for _, result := range results {
		if page := c.assemblePage(result); page != nil {
			sectionResult.Pages = append(sectionResult.Pages, page)
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	return sectionResult, nil
}

// Preview returns the URLs a crawl of the section would fetch, in
// discovery order, without fetching any pages.
func (c *Crawler) Preview(ctx context.Context, section webgenius.Section) ([]string, error) {
	if err := section.Validate(); err != nil {
		return nil, err
	}
	return c.discoverLinks(ctx, section, c.Config.normalize()).URLs(), nil
}

// discoverLinks runs the discovery strategies in escalation order and
// returns the scoped, deduplicated LinkSet with the section root at
// position 0. When every strategy fails or yields nothing, the set
// holds just the root.
func (c *Crawler) discoverLinks(ctx context.Context, section webgenius.Section, cfg Config) *LinkSet {
	links := NewLinkSet()

	var strategies []webgenius.Discoverer
	if c.Sitemaps != nil {
		strategies = append(strategies, c.Sitemaps)
	}
	if c.Static != nil {
		strategies = append(strategies, c.Static)
	}
	if c.Rendered != nil && !cfg.HTTPOnly {
		strategies = append(strategies, c.Rendered)
	}

	base, err := url.Parse(section.BaseURL)
	if err != nil {
		links.Hoist(section.URL())
		return links
	}

	for _, strategy := range strategies {
		candidates, err := strategy.Discover(ctx, section)
		if err != nil {
			if c.Logger != nil {
				c.Logger.Debug("discovery strategy failed",
					slog.String("section", section.URL()),
					slog.Any("error", err),
				)
			}
			continue
		}
		for _, candidate := range candidates {
			if inScope(candidate, base.Host, section.Prefix) {
				links.Add(candidate)
			}
		}
		if links.Len() > 0 {
			break
		}
	}

	links.Hoist(section.URL())
	return links
}

// inScope reports whether a discovered URL belongs to the section:
// same host, path under the section prefix, and a plausible document
// path.
func inScope(rawURL, host, prefix string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	if u.Host != host {
		return false
	}
	if !strings.HasPrefix(u.Path, "/"+prefix) {
		return false
	}
	return webgenius.IsDocumentPath(u.Path)
}

// processPage runs the per-page pipeline: rate limit, direct fetch
// with retry, convert+clean, and escalation to the render tier when
// enabled and needed.
func (c *Crawler) processPage(ctx context.Context, position int, pageURL string, cfg Config) pageResult {
	result := pageResult{position: position, url: pageURL}

	if c.RateLimiter != nil {
		if u, err := url.Parse(pageURL); err == nil {
			if err := c.RateLimiter.Wait(ctx, u.Host); err != nil {
				result.err = err
				return result
			}
		}
	}

	delays := c.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}

	outcome := FetchWithRetryDelays(ctx, pageURL, c.Direct.Fetch, c.Logger, delays)

	var markdown string
	var pageErr error
	switch outcome.Kind {
	case webgenius.OutcomeHTML:
		markdown, pageErr = c.convertAndClean(pageURL, outcome.HTML)
	case webgenius.OutcomeEmpty:
		pageErr = webgenius.Errorf(webgenius.ENOTFOUND, "no HTML content at %s", pageURL)
	case webgenius.OutcomeFailed:
		pageErr = outcome.Err
	}

	canRender := c.Render != nil && cfg.FallbackToRender && !cfg.HTTPOnly
	if canRender && (pageErr != nil || tooShort(markdown)) {
		rendered := c.Render.Fetch(ctx, pageURL)
		switch rendered.Kind {
		case webgenius.OutcomeHTML:
			if md, err := c.convertAndClean(pageURL, rendered.HTML); err == nil {
				markdown, pageErr = md, nil
			}
		case webgenius.OutcomeFailed:
			if pageErr != nil {
				pageErr = rendered.Err
			}
		}
	}

	if pageErr != nil && markdown == "" {
		result.err = pageErr
		return result
	}

	result.markdown = markdown
	return result
}

func (c *Crawler) convertAndClean(pageURL, html string) (string, error) {
	markdown, err := c.Converter.Convert(pageURL, html)
	if err != nil {
		return "", err
	}
	if c.Cleaner != nil {
		markdown = c.Cleaner.Clean(markdown)
	}
	return markdown, nil
}

func tooShort(markdown string) bool {
	return len(strings.TrimSpace(markdown)) <= webgenius.MinContentLength
}

// assemblePage turns a task result into a Page. Failed pages carry
// the error marker; pages with too little content return nil and are
// dropped from the result.
func (c *Crawler) assemblePage(result pageResult) *webgenius.Page {
	if result.err != nil {
		return &webgenius.Page{
			ID:        uuid.New().String(),
			URL:       result.url,
			Title:     errorPageTitle,
			Markdown:  fmt.Sprintf(errorMarkerFormat, result.url, result.err),
			Failed:    true,
			FetchedAt: time.Now().UTC(),
		}
	}

	if tooShort(result.markdown) {
		if c.Logger != nil {
			c.Logger.Debug("dropping page with insufficient content",
				slog.String("url", result.url),
				slog.Int("length", len(strings.TrimSpace(result.markdown))),
			)
		}
		return nil
	}

	return &webgenius.Page{
		ID:        uuid.New().String(),
		URL:       result.url,
		Title:     titleFromMarkdown(result.markdown),
		Markdown:  result.markdown,
		FetchedAt: time.Now().UTC(),
	}
}

// titleFromMarkdown returns the text of the first level-1 heading.
func titleFromMarkdown(markdown string) string {
	for _, line := range strings.Split(markdown, "\n") {
		t := strings.TrimSpace(line)
		if strings.HasPrefix(t, "# ") {
			return strings.TrimSpace(strings.TrimPrefix(t, "# "))
		}
	}
	return ""
}
