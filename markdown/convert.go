// Package markdown converts documentation HTML into Markdown and
// removes duplicated content from the result.
package markdown

import (
	"fmt"
	"net/url"
	"strings"

	webgenius "github.com/Abhishek-yadv/WebGenius"
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Ensure Converter implements webgenius.Converter at compile time.
var _ webgenius.Converter = (*Converter)(nil)

// noContent is returned when a page has no usable content root or its
// HTML cannot be parsed. Callers drop such pages via the acceptance
// threshold rather than treating them as errors.
const noContent = "no content found"

// contentSelectors are tried in order to locate the main-content root.
// Framework-specific containers come first, generic landmarks after.
var contentSelectors = []string{
	"article div.theme-doc-markdown",
	"div.theme-default-content",
	"main",
	"article",
	`[role="main"]`,
	"div.content",
	"div.documentation",
	"div.docs-content",
	"div.markdown-body",
}

// Converter transforms page HTML into Markdown by walking the DOM of
// the main-content root. Convert is deterministic and performs no I/O.
type Converter struct{}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	return &Converter{}
}

// Convert transforms raw page HTML into Markdown. The page URL
// resolves relative links and serves as a title fallback.
func (c *Converter) Convert(pageURL, rawHTML string) (string, error) {
	base, err := url.Parse(pageURL)
	if err != nil {
		return "", webgenius.Errorf(webgenius.EINVALID, "invalid page URL %q: %v", pageURL, err)
	}
	if strings.TrimSpace(rawHTML) == "" {
		return noContent, nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return noContent, nil
	}

	root := findContentRoot(doc)
	if root == nil {
		return noContent, nil
	}
	removeBoilerplate(root)

	title := deriveTitle(doc, root, base)

	w := newWalker(base, title, root.Nodes[0])
	blocks := w.children(root.Nodes[0])

	parts := append([]string{"# " + title}, blocks...)
	return strings.Join(parts, "\n\n"), nil
}

func findContentRoot(doc *goquery.Document) *goquery.Selection {
	for _, sel := range contentSelectors {
		if s := doc.Find(sel).First(); s.Length() > 0 {
			return s
		}
	}
	if s := doc.Find("body").First(); s.Length() > 0 {
		return s
	}
	return nil
}

// deriveTitle prefers the document <title> truncated at the first
// "|" or "-" delimiter, then the first heading in the content root,
// then the last non-empty URL path segment.
func deriveTitle(doc *goquery.Document, root *goquery.Selection, base *url.URL) string {
	if t := doc.Find("title").First().Text(); strings.TrimSpace(t) != "" {
		if i := strings.IndexAny(t, "|-"); i >= 0 {
			t = t[:i]
		}
		if t = strings.TrimSpace(t); t != "" {
			return t
		}
	}
	if h := root.Find("h1, h2, h3, h4, h5, h6").First(); h.Length() > 0 {
		if t := strings.TrimSpace(h.Text()); t != "" {
			return collapseSpace(t)
		}
	}
	segments := strings.Split(strings.Trim(base.Path, "/"), "/")
	for i := len(segments) - 1; i >= 0; i-- {
		if segments[i] != "" {
			return segments[i]
		}
	}
	return base.Host
}

// walker converts a content subtree into Markdown blocks. Node IDs
// are assigned in document order during construction; the visited set
// keyed by ID guarantees each element is emitted at most once even
// when it is reachable through more than one traversal path.
type walker struct {
	base    *url.URL
	title   string
	ids     map[*html.Node]int
	visited map[int]struct{}
}

func newWalker(base *url.URL, title string, root *html.Node) *walker {
	w := &walker{
		base:    base,
		title:   title,
		ids:     make(map[*html.Node]int),
		visited: make(map[int]struct{}),
	}
	next := 0
	var assign func(*html.Node)
	assign = func(n *html.Node) {
		w.ids[n] = next
		next++
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			assign(c)
		}
	}
	assign(root)
	return w
}

// seen reports whether the node was already consumed, marking it
// visited otherwise.
func (w *walker) seen(n *html.Node) bool {
	id, ok := w.ids[n]
	if !ok {
		return false
	}
	if _, dup := w.visited[id]; dup {
		return true
	}
	w.visited[id] = struct{}{}
	return false
}

// markTree marks a node and all its descendants visited. Handlers
// that consume an entire subtree call this so the subtree is never
// reconverted.
func (w *walker) markTree(n *html.Node) {
	if id, ok := w.ids[n]; ok {
		w.visited[id] = struct{}{}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		w.markTree(c)
	}
}

// children converts a node's direct children in document order.
func (w *walker) children(n *html.Node) []string {
	var blocks []string
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		blocks = append(blocks, w.block(c)...)
	}
	return blocks
}

func (w *walker) block(n *html.Node) []string {
	if w.seen(n) {
		return nil
	}
	switch n.Type {
	case html.TextNode:
		if t := collapseSpace(n.Data); t != "" {
			return []string{t}
		}
		return nil
	case html.ElementNode:
	default:
		return nil
	}

	switch n.Data {
	case "h1", "h2", "h3", "h4", "h5", "h6":
		return w.heading(n)
	case "p":
		return w.paragraph(n)
	case "pre":
		return w.codeBlock(n)
	case "ul", "ol":
		return w.list(n, 0)
	case "blockquote":
		return w.blockquote(n)
	case "table":
		return w.table(n)
	case "dl":
		return w.definitionList(n)
	case "details":
		return w.details(n)
	case "hr":
		w.markTree(n)
		return []string{"---"}
	case "br", "script", "style":
		w.markTree(n)
		return nil
	case "a", "img", "span", "strong", "em", "b", "i", "code":
		var b strings.Builder
		w.inlineNode(&b, n, false)
		w.markTree(n)
		if t := collapseSpace(b.String()); t != "" {
			return []string{t}
		}
		return nil
	default:
		return w.container(n)
	}
}

func (w *walker) heading(n *html.Node) []string {
	level := int(n.Data[1] - '0')
	text := w.inlineText(n, false)
	w.markTree(n)
	if text == "" {
		return nil
	}
	if level == 1 && text == w.title {
		return nil
	}
	return []string{strings.Repeat("#", level) + " " + text}
}

func (w *walker) paragraph(n *html.Node) []string {
	text := w.inlineText(n, false)
	w.markTree(n)
	if text == "" {
		return nil
	}
	return []string{text}
}

func (w *walker) codeBlock(n *html.Node) []string {
	lang := ""
	if code := firstElement(n, "code"); code != nil {
		for _, cls := range strings.Fields(attr(code, "class")) {
			if strings.HasPrefix(cls, "language-") {
				lang = strings.TrimPrefix(cls, "language-")
				break
			}
		}
	}
	content := strings.Trim(rawText(n), "\n")
	w.markTree(n)
	if strings.TrimSpace(content) == "" {
		return nil
	}
	return []string{"```" + lang + "\n" + content + "\n```"}
}

func (w *walker) list(n *html.Node, depth int) []string {
	ordered := n.Data == "ol"
	indent := strings.Repeat("  ", depth)
	idx := 1
	var lines []string
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || c.Data != "li" {
			continue
		}
		marker := "- "
		if ordered {
			marker = fmt.Sprintf("%d. ", idx)
			idx++
		}
		if text := w.inlineText(c, true); text != "" {
			lines = append(lines, indent+marker+text)
		}
		for gc := c.FirstChild; gc != nil; gc = gc.NextSibling {
			if gc.Type == html.ElementNode && (gc.Data == "ul" || gc.Data == "ol") {
				lines = append(lines, w.listLines(gc, depth+1)...)
			}
		}
	}
	w.markTree(n)
	if len(lines) == 0 {
		return nil
	}
	return []string{strings.Join(lines, "\n")}
}

func (w *walker) listLines(n *html.Node, depth int) []string {
	blocks := w.list(n, depth)
	var lines []string
	for _, b := range blocks {
		lines = append(lines, strings.Split(b, "\n")...)
	}
	return lines
}

func (w *walker) blockquote(n *html.Node) []string {
	inner := w.children(n)
	w.markTree(n)
	if len(inner) == 0 {
		return nil
	}
	lines := strings.Split(strings.Join(inner, "\n\n"), "\n")
	for i, ln := range lines {
		if strings.TrimSpace(ln) != "" {
			lines[i] = "> " + ln
		}
	}
	return []string{strings.Join(lines, "\n")}
}

func (w *walker) table(n *html.Node) []string {
	var headers []string
	var rows [][]string
	for _, tr := range elementsByTag(n, "tr") {
		var cells []string
		for c := tr.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			if c.Data == "th" || c.Data == "td" {
				cells = append(cells, w.inlineText(c, false))
			}
		}
		if len(cells) == 0 {
			continue
		}
		// The header comes from <thead> or, absent that, the first row.
		if headers == nil {
			headers = cells
			continue
		}
		if equalCells(cells, headers) {
			continue
		}
		rows = append(rows, cells)
	}
	w.markTree(n)
	if headers == nil {
		return nil
	}

	separators := make([]string, len(headers))
	for i := range separators {
		separators[i] = "---"
	}
	lines := []string{
		"| " + strings.Join(headers, " | ") + " |",
		"| " + strings.Join(separators, " | ") + " |",
	}
	for _, r := range rows {
		for len(r) < len(headers) {
			r = append(r, "")
		}
		lines = append(lines, "| "+strings.Join(r, " | ")+" |")
	}
	return []string{strings.Join(lines, "\n")}
}

func equalCells(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func (w *walker) definitionList(n *html.Node) []string {
	var lines []string
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.Data {
		case "dt":
			t := w.inlineText(c, false)
			if t == "" {
				continue
			}
			if strings.Contains(strings.ToLower(attr(c, "class")), "sig") {
				lines = append(lines, "## "+t)
			} else {
				lines = append(lines, "**"+t+"**")
			}
		case "dd":
			if t := w.inlineText(c, false); t != "" {
				lines = append(lines, ": "+t)
			}
		}
	}
	w.markTree(n)
	if len(lines) == 0 {
		return nil
	}
	return []string{strings.Join(lines, "\n")}
}

func (w *walker) details(n *html.Node) []string {
	summary := "Details"
	if s := firstElement(n, "summary"); s != nil {
		if t := w.inlineText(s, false); t != "" {
			summary = t
		}
		w.markTree(s)
	}
	body := w.children(n)
	w.markTree(n)

	block := "<details>\n<summary>" + summary + "</summary>"
	if len(body) > 0 {
		block += "\n\n" + strings.Join(body, "\n\n")
	}
	block += "\n</details>"
	return []string{block}
}

// container recurses into generic elements. Callout containers
// (tip/note/warning class conventions) get an emoji-labelled lead
// line before their converted content.
func (w *walker) container(n *html.Node) []string {
	label := calloutLabel(attr(n, "class"))
	blocks := w.children(n)
	if label != "" && len(blocks) > 0 {
		blocks = append([]string{label}, blocks...)
	}
	return blocks
}

func calloutLabel(class string) string {
	c := strings.ToLower(class)
	switch {
	case strings.Contains(c, "tip"):
		return "💡 **Tip**"
	case strings.Contains(c, "warning"), strings.Contains(c, "caution"), strings.Contains(c, "danger"):
		return "⚠️ **Warning**"
	case strings.Contains(c, "note"), strings.Contains(c, "info"):
		return "📝 **Note**"
	}
	return ""
}

// inlineText renders a node's children with inline Markdown
// formatting, whitespace collapsed. skipLists excludes nested lists
// so list handlers can render them as their own indented lines.
func (w *walker) inlineText(n *html.Node, skipLists bool) string {
	var b strings.Builder
	w.inlineInto(&b, n, skipLists)
	return collapseSpace(b.String())
}

func (w *walker) inlineInto(b *strings.Builder, n *html.Node, skipLists bool) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		w.inlineNode(b, c, skipLists)
	}
}

func (w *walker) inlineNode(b *strings.Builder, n *html.Node, skipLists bool) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(n.Data)
		return
	case html.ElementNode:
	default:
		return
	}
	if skipLists && (n.Data == "ul" || n.Data == "ol") {
		return
	}
	switch n.Data {
	case "code":
		if t := strings.TrimSpace(rawText(n)); t != "" {
			b.WriteString("`" + t + "`")
		}
	case "strong", "b":
		if t := w.inlineText(n, skipLists); t != "" {
			b.WriteString("**" + t + "**")
		}
	case "em", "i":
		if t := w.inlineText(n, skipLists); t != "" {
			b.WriteString("*" + t + "*")
		}
	case "a":
		b.WriteString(w.anchor(n))
	case "img":
		b.WriteString(w.image(n))
	case "br":
		b.WriteString(" ")
	case "script", "style":
	default:
		w.inlineInto(b, n, skipLists)
	}
}

// anchor renders a link. Fragment-only and empty hrefs emit the bare
// link text.
func (w *walker) anchor(n *html.Node) string {
	text := w.inlineText(n, false)
	href := strings.TrimSpace(attr(n, "href"))
	if text == "" {
		return ""
	}
	if href == "" || strings.HasPrefix(href, "#") {
		return text
	}
	return fmt.Sprintf("[%s](%s)", text, w.abs(href))
}

func (w *walker) image(n *html.Node) string {
	src := strings.TrimSpace(attr(n, "src"))
	if src == "" {
		return ""
	}
	alt := strings.TrimSpace(attr(n, "alt"))
	if alt == "" {
		alt = "Image"
	}
	return fmt.Sprintf("![%s](%s)", alt, w.abs(src))
}

// abs resolves an href against the page URL. Unparseable hrefs pass
// through unchanged.
func (w *walker) abs(href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return w.base.ResolveReference(ref).String()
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// rawText concatenates all text nodes under n, preserving whitespace.
func rawText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

func attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

func firstElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := firstElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

func elementsByTag(n *html.Node, tag string) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == tag {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}
