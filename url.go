package webgenius

import (
	"net/url"
	"path"
	"strings"
)

// NormalizeURL returns the absolute form of a URL with its fragment
// stripped. Two URLs that differ only by fragment normalize to the
// same string. Normalization is idempotent.
func NormalizeURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", Errorf(EINVALID, "invalid URL %q: %v", raw, err)
	}
	if !u.IsAbs() {
		return "", Errorf(EINVALID, "URL %q is not absolute", raw)
	}
	u.Fragment = ""
	return u.String(), nil
}

// nonDocumentExtensions lists file extensions that never hold
// documentation pages and are skipped during link discovery.
var nonDocumentExtensions = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true,
	".svg": true, ".ico": true, ".webp": true,
	".css": true, ".js": true, ".mjs": true, ".map": true,
	".woff": true, ".woff2": true, ".ttf": true, ".eot": true, ".otf": true,
	".zip": true, ".tar": true, ".gz": true, ".tgz": true, ".bz2": true, ".7z": true, ".rar": true,
	".mp3": true, ".mp4": true, ".webm": true, ".ogg": true, ".wav": true, ".avi": true, ".mov": true,
	".exe": true, ".dmg": true, ".pkg": true, ".deb": true, ".rpm": true,
}

// IsDocumentPath reports whether a URL path may point at a
// documentation page, i.e. does not carry a known non-document
// extension.
func IsDocumentPath(p string) bool {
	ext := strings.ToLower(path.Ext(p))
	return !nonDocumentExtensions[ext]
}

// ResolveLink resolves an anchor href against a base URL and returns
// the normalized absolute URL. The second result is false for hrefs
// that can never lead to a page: empty values, pure fragments,
// non-HTTP schemes (javascript:, mailto:, tel:, data:), unparseable
// values, and links to a different host than the base.
func ResolveLink(base *url.URL, href string) (string, bool) {
	href = strings.TrimSpace(href)
	if href == "" || strings.HasPrefix(href, "#") {
		return "", false
	}
	lower := strings.ToLower(href)
	for _, scheme := range []string{"javascript:", "mailto:", "tel:", "data:"} {
		if strings.HasPrefix(lower, scheme) {
			return "", false
		}
	}

	ref, err := url.Parse(href)
	if err != nil {
		return "", false
	}
	resolved := base.ResolveReference(ref)
	resolved.Fragment = ""
	if resolved.Host != base.Host {
		return "", false
	}
	return resolved.String(), true
}
