package webgenius

import (
	"strings"
	"time"
)

// MinContentLength is the acceptance boundary for a crawled page:
// a page is kept only if its converted and cleaned Markdown, after
// trimming, is strictly longer than this.
const MinContentLength = 50

// Page represents one crawled documentation page.
type Page struct {
	ID        string    `json:"id"`
	URL       string    `json:"url"`
	Title     string    `json:"title"`
	Markdown  string    `json:"markdown"`
	Failed    bool      `json:"failed"`
	FetchedAt time.Time `json:"fetchedAt"`
}

// Accepted reports whether the page holds real content: it did not
// fail and its trimmed Markdown exceeds MinContentLength.
func (p *Page) Accepted() bool {
	return !p.Failed && len(strings.TrimSpace(p.Markdown)) > MinContentLength
}

// SectionResult is the ordered outcome of crawling one section.
// Pages appear in discovery order, the section root first. Failed
// pages are retained with a visible error marker; pages dropped for
// insufficient content are absent entirely.
type SectionResult struct {
	Section Section `json:"section"`
	Pages   []*Page `json:"pages"`
}

// Accepted returns the pages that hold real content, in order.
func (r *SectionResult) Accepted() []*Page {
	var pages []*Page
	for _, p := range r.Pages {
		if p.Accepted() {
			pages = append(pages, p)
		}
	}
	return pages
}

// Markdown returns the page Markdown keyed by URL.
func (r *SectionResult) Markdown() map[string]string {
	m := make(map[string]string, len(r.Pages))
	for _, p := range r.Pages {
		m[p.URL] = p.Markdown
	}
	return m
}
