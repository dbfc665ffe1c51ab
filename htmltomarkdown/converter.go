// Package htmltomarkdown converts page HTML to Markdown using the
// html-to-markdown library. It is an alternative to the goquery-based
// DOM converter and pairs well with a content extractor that strips
// boilerplate beforehand.
package htmltomarkdown

import (
	"net/url"
	"strings"

	webgenius "github.com/Abhishek-yadv/WebGenius"
	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
)

// Ensure Converter implements webgenius.Converter at compile time.
var _ webgenius.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to convert page HTML to Markdown.
// When an extractor is configured, the main content is extracted
// first and only that content is converted.
type Converter struct {
	conv      *converter.Converter
	extractor webgenius.Extractor
}

// Option configures a Converter.
type Option func(*Converter)

// WithExtractor sets an extractor that isolates main content before
// conversion.
func WithExtractor(extractor webgenius.Extractor) Option {
	return func(c *Converter) {
		c.extractor = extractor
	}
}

// NewConverter creates a new Converter.
func NewConverter(opts ...Option) *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	c := &Converter{conv: conv}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert transforms page HTML into Markdown. The page URL resolves
// relative links in the output.
func (c *Converter) Convert(pageURL, html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", webgenius.Errorf(webgenius.EINVALID, "empty HTML input")
	}

	var title string
	if c.extractor != nil {
		extracted, err := c.extractor.Extract(html)
		if err != nil {
			return "", err
		}
		if extracted.ContentHTML != "" {
			html = extracted.ContentHTML
			title = extracted.Title
		}
	}

	var opts []converter.ConvertOptionFunc
	if u, err := url.Parse(pageURL); err == nil && u.Host != "" {
		opts = append(opts, converter.WithDomain(u.Scheme+"://"+u.Host))
	}

	markdown, err := c.conv.ConvertString(html, opts...)
	if err != nil {
		return "", err
	}

	markdown = strings.TrimSpace(markdown)
	if title != "" && !strings.HasPrefix(markdown, "# ") {
		markdown = "# " + title + "\n\n" + markdown
	}

	return markdown, nil
}
