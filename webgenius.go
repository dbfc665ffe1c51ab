// Package webgenius turns a documentation section (a base URL plus a
// path prefix) into an ordered, deduplicated Markdown rendering of
// every page under that section. It discovers in-section links,
// fetches pages with a direct-HTTP-to-rendered-browser escalation,
// converts each page's DOM to Markdown, and strips duplicate content
// introduced by overlapping traversal paths.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., http/,
// rod/, markdown/, sqlite/).
package webgenius
