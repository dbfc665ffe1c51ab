package webgenius

import "context"

// OutcomeKind classifies a fetch attempt.
type OutcomeKind int

// Fetch outcome kinds.
const (
	// OutcomeHTML means the fetch produced an HTML document.
	OutcomeHTML OutcomeKind = iota
	// OutcomeEmpty means the response was not an HTML/XML document or
	// carried no content. Not retried and not an error.
	OutcomeEmpty
	// OutcomeFailed means the fetch failed (transport error, timeout,
	// or non-2xx status).
	OutcomeFailed
)

// String returns a human-readable name for the outcome kind.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeHTML:
		return "html"
	case OutcomeEmpty:
		return "empty"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// FetchOutcome is the tri-state result of fetching one URL. Fetchers
// never surface errors any other way; escalation decisions are
// explicit branches on Kind at the caller.
type FetchOutcome struct {
	Kind OutcomeKind
	HTML string
	Err  error
}

// HTMLOutcome returns a successful outcome holding an HTML document.
func HTMLOutcome(html string) FetchOutcome {
	return FetchOutcome{Kind: OutcomeHTML, HTML: html}
}

// EmptyOutcome returns an outcome for non-HTML or empty responses.
func EmptyOutcome() FetchOutcome {
	return FetchOutcome{Kind: OutcomeEmpty}
}

// FailedOutcome returns a failed outcome wrapping the cause.
func FailedOutcome(err error) FetchOutcome {
	return FetchOutcome{Kind: OutcomeFailed, Err: err}
}

// Fetcher retrieves HTML from URLs. The direct tier issues plain HTTP
// requests; the render tier loads the page in a headless browser and
// reads the DOM after script execution.
type Fetcher interface {
	// Fetch retrieves the URL and classifies the result.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) FetchOutcome

	// Close releases resources held across fetches (connections,
	// browser contexts). Must be called once per crawl.
	Close() error
}

// Discoverer finds candidate page URLs for a section. Implementations
// return absolute, fragment-stripped, same-host URLs in first-seen
// order; section scope filtering and root hoisting are the crawler's
// responsibility.
type Discoverer interface {
	Discover(ctx context.Context, section Section) ([]string, error)
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
