package markdown_test

import (
	"strings"
	"testing"

	"github.com/Abhishek-yadv/WebGenius/markdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleaner_Clean_Idempotent(t *testing.T) {
	t.Parallel()

	in := "# Title\n\n\n\nPara one.\n\nPara one.\n\nPara two.\nPara two.\n\n```go\ncode line\n```\n\n```go\ncode line\n```"

	c := markdown.NewCleaner()
	once := c.Clean(in)

	assert.Equal(t, once, c.Clean(once))
}

func TestCleaner_Clean_CollapsesNewlines(t *testing.T) {
	t.Parallel()

	got := markdown.NewCleaner().Clean("alpha first line\n\n\n\nbeta second line")

	assert.Equal(t, "alpha first line\n\nbeta second line", got)
}

func TestCleaner_Clean_DropsAdjacentRepeats(t *testing.T) {
	t.Parallel()

	got := markdown.NewCleaner().Clean("Repeated line here\nRepeated line here\nAnother line")

	assert.Equal(t, "Repeated line here\nAnother line", got)
}

func TestCleaner_Clean_ParagraphDedupIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	got := markdown.NewCleaner().Clean("Alpha beta gamma.\n\nMiddle content here.\n\nALPHA BETA GAMMA.")

	assert.Equal(t, "Alpha beta gamma.\n\nMiddle content here.", got)
}

func TestCleaner_Clean_FencedCodeIsProtected(t *testing.T) {
	t.Parallel()

	in := "print(alpha)\n\n```python\nprint(alpha)\nprint(beta)\n```"

	got := markdown.NewCleaner().Clean(in)

	assert.Equal(t, in, got)
}

func TestCleaner_Clean_ShortLinesSurvive(t *testing.T) {
	t.Parallel()

	in := "*\nfoo bar baz qux\n*\nanother long line"

	got := markdown.NewCleaner().Clean(in)

	assert.Equal(t, in, got)
}

func TestCleaner_Clean_AfterConvert_DuplicateSiblings(t *testing.T) {
	t.Parallel()

	html := `<html><head><title>Guide</title></head><body><main>
<div><h2>Install</h2><p>Run the installer.</p></div>
<div><h2>Install</h2><p>Run the installer.</p></div>
</main></body></html>`

	converted, err := markdown.NewConverter().Convert("https://example.com/docs/install", html)
	require.NoError(t, err)

	got := markdown.NewCleaner().Clean(converted)

	assert.Equal(t, 1, strings.Count(got, "## Install"))
	assert.Equal(t, 1, strings.Count(got, "Run the installer."))
}
