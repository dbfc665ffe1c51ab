package crawl

import (
	webgenius "github.com/Abhishek-yadv/WebGenius"
	"github.com/Abhishek-yadv/WebGenius/bloom"
)

// Bloom filter sizing for LinkSet membership tracking.
const (
	linkSetExpectedURLs      = 10000
	linkSetFalsePositiveRate = 0.01
)

// LinkSet is an insertion-ordered set of normalized page URLs.
// Membership is tracked with a Bloom filter: a false positive can
// drop a never-seen URL, but a URL is never crawled twice.
type LinkSet struct {
	seen *bloom.Filter
	urls []string
}

// NewLinkSet creates an empty LinkSet.
func NewLinkSet() *LinkSet {
	return &LinkSet{
		seen: bloom.NewFilter(linkSetExpectedURLs, linkSetFalsePositiveRate),
	}
}

// Add normalizes the URL (stripping any fragment) and appends it if
// unseen. Returns true when the URL was added.
func (s *LinkSet) Add(rawURL string) bool {
	normalized, err := webgenius.NormalizeURL(rawURL)
	if err != nil {
		return false
	}
	if s.seen.Test(normalized) {
		return false
	}
	s.seen.Add(normalized)
	s.urls = append(s.urls, normalized)
	return true
}

// Hoist puts the section root at position 0, removing it from the
// body of the list if it was rediscovered.
func (s *LinkSet) Hoist(rootURL string) {
	normalized, err := webgenius.NormalizeURL(rootURL)
	if err != nil {
		return
	}
	hoisted := make([]string, 0, len(s.urls)+1)
	hoisted = append(hoisted, normalized)
	for _, u := range s.urls {
		if u != normalized {
			hoisted = append(hoisted, u)
		}
	}
	s.urls = hoisted
	s.seen.Add(normalized)
}

// URLs returns the set contents in insertion order.
func (s *LinkSet) URLs() []string {
	return s.urls
}

// Len returns the number of URLs in the set.
func (s *LinkSet) Len() int {
	return len(s.urls)
}
