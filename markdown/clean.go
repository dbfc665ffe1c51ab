package markdown

import (
	"regexp"
	"strings"

	webgenius "github.com/Abhishek-yadv/WebGenius"
	"github.com/cespare/xxhash/v2"
)

// Ensure Cleaner implements webgenius.Cleaner at compile time.
var _ webgenius.Cleaner = (*Cleaner)(nil)

// Cleaner removes duplicate content from converted Markdown.
// Overlapping traversal paths and repeated page furniture leave
// repeated lines, paragraphs, and blocks; Clean strips them while
// leaving fenced code untouched in the line passes.
type Cleaner struct{}

// NewCleaner creates a new Cleaner.
func NewCleaner() *Cleaner {
	return &Cleaner{}
}

var multiNewline = regexp.MustCompile(`\n{3,}`)

// linkLine matches a line that is a single Markdown link.
var linkLine = regexp.MustCompile(`^\[[^\]]*\]\([^)]*\)$`)

// Clean removes duplicated content. It applies the pass pipeline
// until a fixed point, so Clean(Clean(x)) == Clean(x).
func (c *Cleaner) Clean(markdown string) string {
	prev := markdown
	for {
		next := cleanOnce(prev)
		if next == prev {
			return next
		}
		prev = next
	}
}

func cleanOnce(s string) string {
	s = multiNewline.ReplaceAllString(s, "\n\n")
	s = dropAdjacentRepeats(s)
	s = collapseRepeatedUnits(s)
	s = dedupeParagraphs(s)
	s = dedupeLines(s)
	return strings.TrimSpace(s)
}

// dropAdjacentRepeats drops a line that repeats (after trim) the
// nearest preceding non-blank kept line and collapses consecutive
// blank lines to one.
func dropAdjacentRepeats(s string) string {
	var out []string
	last := ""
	for _, ln := range strings.Split(s, "\n") {
		t := strings.TrimSpace(ln)
		if t == "" {
			if len(out) > 0 && strings.TrimSpace(out[len(out)-1]) != "" {
				out = append(out, "")
			}
			continue
		}
		if t == last {
			continue
		}
		out = append(out, ln)
		last = t
	}
	return strings.Join(out, "\n")
}

// collapseRepeatedUnits collapses an immediately repeated fenced code
// block, heading line, or standalone link line into one instance.
func collapseRepeatedUnits(s string) string {
	lines := strings.Split(s, "\n")

	var units []string
	for i := 0; i < len(lines); {
		if strings.HasPrefix(strings.TrimSpace(lines[i]), "```") {
			j := i + 1
			for j < len(lines) && !strings.HasPrefix(strings.TrimSpace(lines[j]), "```") {
				j++
			}
			if j < len(lines) {
				j++
			}
			units = append(units, strings.Join(lines[i:j], "\n"))
			i = j
			continue
		}
		units = append(units, lines[i])
		i++
	}

	var kept []string
	for _, u := range units {
		if len(kept) > 0 && u == kept[len(kept)-1] && collapsibleUnit(u) {
			continue
		}
		kept = append(kept, u)
	}
	return strings.Join(kept, "\n")
}

func collapsibleUnit(u string) bool {
	t := strings.TrimSpace(u)
	return strings.HasPrefix(t, "```") || strings.HasPrefix(t, "#") || linkLine.MatchString(t)
}

// dedupeParagraphs keeps the first occurrence of each blank-line
// separated paragraph, compared case-insensitively after trimming.
// Blank lines inside fenced code do not split paragraphs.
func dedupeParagraphs(s string) string {
	var paragraphs []string
	var current []string
	inFence := false

	flush := func() {
		if len(current) > 0 {
			paragraphs = append(paragraphs, strings.Join(current, "\n"))
			current = nil
		}
	}

	for _, ln := range strings.Split(s, "\n") {
		t := strings.TrimSpace(ln)
		if strings.HasPrefix(t, "```") {
			inFence = !inFence
			current = append(current, ln)
			continue
		}
		if t == "" && !inFence {
			flush()
			continue
		}
		current = append(current, ln)
	}
	flush()

	seen := make(map[uint64]struct{}, len(paragraphs))
	var kept []string
	for _, p := range paragraphs {
		key := xxhash.Sum64String(strings.ToLower(strings.TrimSpace(p)))
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		kept = append(kept, p)
	}
	return strings.Join(kept, "\n\n")
}

// dedupeLines drops a line that case-insensitively repeats an earlier
// line. Lines inside fenced code blocks are never dropped, and lines
// shorter than 3 characters are kept so list markers and punctuation
// survive.
func dedupeLines(s string) string {
	seen := make(map[uint64]struct{})
	inFence := false
	var out []string

	for _, ln := range strings.Split(s, "\n") {
		t := strings.TrimSpace(ln)
		if strings.HasPrefix(t, "```") {
			inFence = !inFence
			out = append(out, ln)
			continue
		}
		if inFence || len([]rune(t)) < 3 {
			out = append(out, ln)
			continue
		}
		key := xxhash.Sum64String(strings.ToLower(t))
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, ln)
	}
	return strings.Join(out, "\n")
}
