package http

import (
	"context"
	"net/url"
	"strings"

	webgenius "github.com/Abhishek-yadv/WebGenius"
	"golang.org/x/net/html"
)

// Ensure Discoverer implements webgenius.Discoverer at compile time.
var _ webgenius.Discoverer = (*Discoverer)(nil)

// Discoverer finds candidate page URLs by fetching a section's raw
// HTML and scanning anchor tags. It sees only server-rendered
// navigation; JS-rendered navigation needs the render strategy.
type Discoverer struct {
	fetcher webgenius.Fetcher
}

// NewDiscoverer creates a static link discoverer on top of a direct
// fetcher.
func NewDiscoverer(fetcher webgenius.Fetcher) *Discoverer {
	return &Discoverer{fetcher: fetcher}
}

// Discover fetches the section root and returns the absolute,
// same-host URLs of its anchors in first-seen order.
func (d *Discoverer) Discover(ctx context.Context, section webgenius.Section) ([]string, error) {
	outcome := d.fetcher.Fetch(ctx, section.URL())
	switch outcome.Kind {
	case webgenius.OutcomeFailed:
		return nil, outcome.Err
	case webgenius.OutcomeEmpty:
		return nil, nil
	}

	base, err := url.Parse(section.URL())
	if err != nil {
		return nil, webgenius.Errorf(webgenius.EINVALID, "invalid section URL %q: %v", section.URL(), err)
	}

	return AnchorHrefs(outcome.HTML, base), nil
}

// AnchorHrefs extracts anchor hrefs from raw HTML, resolved against
// base and deduplicated in first-seen order. Only <a> tags are
// examined; the tokenizer never builds a full DOM.
func AnchorHrefs(rawHTML string, base *url.URL) []string {
	var urls []string
	seen := make(map[string]struct{})

	z := html.NewTokenizer(strings.NewReader(rawHTML))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return urls
		case html.StartTagToken, html.SelfClosingTagToken:
			name, hasAttr := z.TagName()
			if len(name) != 1 || name[0] != 'a' || !hasAttr {
				continue
			}
			for {
				key, val, more := z.TagAttr()
				if string(key) == "href" {
					if resolved, ok := webgenius.ResolveLink(base, string(val)); ok {
						if _, dup := seen[resolved]; !dup {
							seen[resolved] = struct{}{}
							urls = append(urls, resolved)
						}
					}
					break
				}
				if !more {
					break
				}
			}
		}
	}
}
