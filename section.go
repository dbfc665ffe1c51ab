package webgenius

import (
	"net/url"
	"strings"
)

// Section identifies a documentation subtree: a base URL plus the
// first path segment under it.
type Section struct {
	BaseURL string `json:"baseUrl"`
	Prefix  string `json:"prefix"`
}

// URL returns the crawl root for the section.
func (s Section) URL() string {
	return s.BaseURL + "/" + s.Prefix
}

// Validate returns an error if the section is incomplete.
func (s Section) Validate() error {
	if s.BaseURL == "" {
		return Errorf(EINVALID, "section base URL required")
	}
	if s.Prefix == "" {
		return Errorf(EINVALID, "section path prefix required")
	}
	return nil
}

// ParseSectionURL splits a documentation URL into its base
// (scheme + authority) and the first path segment, which becomes the
// section prefix. The URL must include a section path:
// https://docs.example.com/guide/intro yields
// {BaseURL: "https://docs.example.com", Prefix: "guide"}.
func ParseSectionURL(raw string) (Section, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return Section{}, Errorf(EINVALID, "invalid section URL %q: %v", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return Section{}, Errorf(EINVALID, "section URL %q must be http or https", raw)
	}
	if u.Host == "" {
		return Section{}, Errorf(EINVALID, "section URL %q has no host", raw)
	}

	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(segments) == 0 || segments[0] == "" {
		return Section{}, Errorf(EINVALID, "URL must include a section path (e.g., https://docs.example.com/section)")
	}

	return Section{
		BaseURL: u.Scheme + "://" + u.Host,
		Prefix:  segments[0],
	}, nil
}
