package markdown

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// keepTextThreshold protects prose that happens to match a generic
// boilerplate class name: a guarded match whose own text exceeds this
// many characters is kept.
const keepTextThreshold = 30

// inlineTags are never removed by guarded rules regardless of class.
var inlineTags = map[string]bool{
	"span": true, "strong": true, "em": true,
	"b": true, "i": true, "code": true,
}

// removalRule pairs a boilerplate selector with an optional keep
// predicate. A nil Keep removes every match unconditionally.
type removalRule struct {
	Selector string
	Keep     func(*goquery.Selection) bool
}

func keepIfSubstantial(s *goquery.Selection) bool {
	if inlineTags[goquery.NodeName(s)] {
		return true
	}
	return len([]rune(strings.TrimSpace(s.Text()))) > keepTextThreshold
}

// removalRules is the boilerplate deny-list applied to the
// main-content root before conversion. Structural chrome and hidden
// elements go unconditionally; class-based matches are guarded so
// real prose with an unlucky class name survives.
var removalRules = []removalRule{
	{Selector: "script, style, noscript, template"},
	{Selector: "nav, header, footer"},
	{Selector: "aside"},
	{Selector: `[hidden], [aria-hidden="true"]`},
	{Selector: `[style*="display:none"], [style*="display: none"]`},

	{Selector: `.sidebar, #sidebar, [class*="sidebar"], [id*="sidebar"]`, Keep: keepIfSubstantial},
	{Selector: `[class*="navigation"], [role="navigation"]`, Keep: keepIfSubstantial},
	{Selector: ".toc, .table-of-contents, .menu", Keep: keepIfSubstantial},
	{Selector: ".breadcrumb, .breadcrumbs", Keep: keepIfSubstantial},
	{Selector: `[class*="cookie"], [class*="modal"], [class*="search"]`, Keep: keepIfSubstantial},
	{Selector: `[class*="advert"], .ads, [class*="banner"]`, Keep: keepIfSubstantial},
	{Selector: `[class*="share"], [class*="social"]`, Keep: keepIfSubstantial},
	{Selector: "#comments, .comments", Keep: keepIfSubstantial},
}

// removeBoilerplate strips boilerplate subtrees from the content root
// in place.
func removeBoilerplate(root *goquery.Selection) {
	for _, rule := range removalRules {
		root.Find(rule.Selector).Each(func(_ int, s *goquery.Selection) {
			if rule.Keep != nil && rule.Keep(s) {
				return
			}
			s.Remove()
		})
	}
}
