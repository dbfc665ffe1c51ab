package fs_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	webgenius "github.com/Abhishek-yadv/WebGenius"
	"github.com/Abhishek-yadv/WebGenius/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testResult() *webgenius.SectionResult {
	return &webgenius.SectionResult{
		Section: webgenius.Section{BaseURL: "https://example.com", Prefix: "docs"},
		Pages: []*webgenius.Page{
			{
				ID:        "11111111-1111-1111-1111-111111111111",
				URL:       "https://example.com/docs",
				Title:     "Overview",
				Markdown:  "# Overview\n\nThe root page.",
				FetchedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
			},
			{
				ID:        "22222222-2222-2222-2222-222222222222",
				URL:       "https://example.com/docs/setup",
				Title:     "Setup",
				Markdown:  "# Setup\n\nInstall everything.",
				FetchedAt: time.Date(2026, 8, 1, 12, 0, 1, 0, time.UTC),
			},
		},
	}
}

func TestWriter_SaveResult(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	w := fs.NewWriter(dir)

	err := w.SaveResult(context.Background(), testResult())
	require.NoError(t, err)

	jsonFiles, err := filepath.Glob(filepath.Join(dir, "docs_*.json"))
	require.NoError(t, err)
	require.Len(t, jsonFiles, 1)

	mdFiles, err := filepath.Glob(filepath.Join(dir, "docs_*.md"))
	require.NoError(t, err)
	require.Len(t, mdFiles, 1)

	data, err := os.ReadFile(jsonFiles[0])
	require.NoError(t, err)

	var loaded webgenius.SectionResult
	require.NoError(t, json.Unmarshal(data, &loaded))
	require.Len(t, loaded.Pages, 2)
	assert.Equal(t, "https://example.com/docs", loaded.Pages[0].URL)
	assert.Equal(t, "Setup", loaded.Pages[1].Title)

	transcript, err := os.ReadFile(mdFiles[0])
	require.NoError(t, err)
	text := string(transcript)
	assert.Contains(t, text, "# Source: [https://example.com/docs](https://example.com/docs)")
	assert.Contains(t, text, "# Source: [https://example.com/docs/setup](https://example.com/docs/setup)")
	assert.Contains(t, text, "The root page.")
	assert.Contains(t, text, "Install everything.")
	assert.Contains(t, text, "---")
}

func TestWriter_SaveResult_InvalidSection(t *testing.T) {
	t.Parallel()

	w := fs.NewWriter(t.TempDir())

	err := w.SaveResult(context.Background(), &webgenius.SectionResult{})

	require.Error(t, err)
	assert.Equal(t, webgenius.EINVALID, webgenius.ErrorCode(err))
}
