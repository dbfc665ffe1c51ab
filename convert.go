package webgenius

import "context"

// Converter converts a page's HTML into Markdown. Convert is a pure
// function of its inputs: no network access, deterministic output.
type Converter interface {
	// Convert transforms raw page HTML into Markdown. The page URL is
	// used to resolve relative links and as a title fallback.
	Convert(url, html string) (string, error)
}

// Cleaner removes duplicate content from converted Markdown. Clean is
// idempotent: Clean(Clean(x)) == Clean(x).
type Cleaner interface {
	Clean(markdown string) string
}

// ExtractResult holds the extracted content from an HTML page.
type ExtractResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// ContentHTML is the main content as clean HTML, with boilerplate
	// (nav, footer, sidebar, ads) removed.
	ContentHTML string
}

// Extractor extracts main content from HTML pages, removing
// boilerplate.
type Extractor interface {
	Extract(html string) (*ExtractResult, error)
}

// TokenCounter counts LLM tokens in text, for result statistics.
type TokenCounter interface {
	CountTokens(ctx context.Context, text string) (int, error)
}

// ResultStore persists the outcome of a section crawl.
type ResultStore interface {
	SaveResult(ctx context.Context, result *SectionResult) error
}
