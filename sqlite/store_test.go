package sqlite_test

import (
	"context"
	"testing"
	"time"

	webgenius "github.com/Abhishek-yadv/WebGenius"
	"github.com/Abhishek-yadv/WebGenius/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustOpenDB opens an in-memory database for testing.
func mustOpenDB(t *testing.T) *sqlite.DB {
	t.Helper()

	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() {
		assert.NoError(t, db.Close())
	})
	return db
}

func TestResultStore_SaveResult(t *testing.T) {
	t.Parallel()

	db := mustOpenDB(t)
	store := sqlite.NewResultStore(db)
	ctx := context.Background()

	section := webgenius.Section{BaseURL: "https://example.com", Prefix: "docs"}
	result := &webgenius.SectionResult{
		Section: section,
		Pages: []*webgenius.Page{
			{
				URL:       "https://example.com/docs",
				Title:     "Overview",
				Markdown:  "# Overview\n\nRoot content.",
				FetchedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
			},
			{
				URL:      "https://example.com/docs/broken",
				Title:    "Error Page",
				Markdown: "⚠️ Failed to load or extract content from https://example.com/docs/broken: HTTP 404",
				Failed:   true,
			},
		},
	}

	require.NoError(t, store.SaveResult(ctx, result))

	sectionID, err := store.FindSectionID(ctx, section)
	require.NoError(t, err)

	pages, err := store.FindPages(ctx, sectionID)
	require.NoError(t, err)
	require.Len(t, pages, 2)

	assert.Equal(t, "https://example.com/docs", pages[0].URL)
	assert.Equal(t, "Overview", pages[0].Title)
	assert.False(t, pages[0].Failed)

	assert.Equal(t, "https://example.com/docs/broken", pages[1].URL)
	assert.True(t, pages[1].Failed)
}

func TestResultStore_SaveResult_InvalidSection(t *testing.T) {
	t.Parallel()

	db := mustOpenDB(t)
	store := sqlite.NewResultStore(db)

	err := store.SaveResult(context.Background(), &webgenius.SectionResult{})

	require.Error(t, err)
	assert.Equal(t, webgenius.EINVALID, webgenius.ErrorCode(err))
}

func TestResultStore_FindSectionID_NotFound(t *testing.T) {
	t.Parallel()

	db := mustOpenDB(t)
	store := sqlite.NewResultStore(db)

	_, err := store.FindSectionID(context.Background(), webgenius.Section{
		BaseURL: "https://example.com",
		Prefix:  "missing",
	})

	require.Error(t, err)
	assert.Equal(t, webgenius.ENOTFOUND, webgenius.ErrorCode(err))
}
