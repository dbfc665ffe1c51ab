// Package fs provides file-based persistence of section results.
package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	webgenius "github.com/Abhishek-yadv/WebGenius"
	md "github.com/nao1215/markdown"
)

// Ensure Writer implements webgenius.ResultStore at compile time.
var _ webgenius.ResultStore = (*Writer)(nil)

// Writer persists a section result as two sibling files in a base
// directory: a structured JSON file with the per-page data and a
// flattened Markdown transcript with per-page source headings and
// horizontal-rule separators.
type Writer struct {
	baseDir string

	// now is injectable for deterministic file naming in tests.
	now func() time.Time
}

// NewWriter creates a Writer that writes into baseDir.
func NewWriter(baseDir string) *Writer {
	return &Writer{
		baseDir: baseDir,
		now:     time.Now,
	}
}

// SaveResult writes <prefix>_<timestamp>.json and
// <prefix>_<timestamp>.md into the base directory.
func (w *Writer) SaveResult(ctx context.Context, result *webgenius.SectionResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := result.Section.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return err
	}

	stem := fmt.Sprintf("%s_%s", result.Section.Prefix, w.now().UTC().Format("20060102_150405"))

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(w.baseDir, stem+".json"), data, 0644); err != nil {
		return err
	}

	return w.writeTranscript(filepath.Join(w.baseDir, stem+".md"), result)
}

// writeTranscript writes the flattened Markdown document: one
// "# Source: [url](url)" heading per page, the page Markdown below
// it, and "---" between pages.
func (w *Writer) writeTranscript(path string, result *webgenius.SectionResult) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	m := md.NewMarkdown(f)
	for i, page := range result.Pages {
		if i > 0 {
			m.HorizontalRule()
		}
		m.H1("Source: " + md.Link(page.URL, page.URL))
		m.PlainText(page.Markdown)
	}

	return m.Build()
}
