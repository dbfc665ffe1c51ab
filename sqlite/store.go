package sqlite

import (
	"context"
	"encoding/hex"
	"time"

	webgenius "github.com/Abhishek-yadv/WebGenius"
	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ webgenius.ResultStore = (*ResultStore)(nil)

// ResultStore implements webgenius.ResultStore using SQLite. Each
// saved result creates one section row and one page row per crawled
// page, with the page's position preserving discovery order.
type ResultStore struct {
	db *DB
}

// NewResultStore creates a new ResultStore.
func NewResultStore(db *DB) *ResultStore {
	return &ResultStore{db: db}
}

// hashContent computes xxHash of content and returns a hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	for i := 0; i < 8; i++ {
		b[i] = byte(h >> (56 - 8*i))
	}
	return hex.EncodeToString(b)
}

// SaveResult persists a section result.
func (s *ResultStore) SaveResult(ctx context.Context, result *webgenius.SectionResult) error {
	if err := result.Section.Validate(); err != nil {
		return err
	}

	sectionID := uuid.New().String()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO sections (id, base_url, prefix, created_at)
		VALUES (?, ?, ?, ?)
	`, sectionID, result.Section.BaseURL, result.Section.Prefix, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return err
	}

	for position, page := range result.Pages {
		id := page.ID
		if id == "" {
			id = uuid.New().String()
		}
		fetchedAt := page.FetchedAt
		if fetchedAt.IsZero() {
			fetchedAt = time.Now().UTC()
		}

		_, err := s.db.ExecContext(ctx, `
			INSERT INTO pages (id, section_id, url, title, markdown, content_hash, failed, position, fetched_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, id, sectionID, page.URL, page.Title, page.Markdown, hashContent(page.Markdown),
			boolToInt(page.Failed), position, fetchedAt.Format(time.RFC3339))
		if err != nil {
			return err
		}
	}

	return nil
}

// FindPages retrieves the pages of a saved section in discovery
// order.
func (s *ResultStore) FindPages(ctx context.Context, sectionID string) ([]*webgenius.Page, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, url, title, markdown, failed, fetched_at
		FROM pages
		WHERE section_id = ?
		ORDER BY position ASC
	`, sectionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pages []*webgenius.Page
	for rows.Next() {
		var page webgenius.Page
		var failed int
		var fetchedAt string

		if err := rows.Scan(&page.ID, &page.URL, &page.Title, &page.Markdown, &failed, &fetchedAt); err != nil {
			return nil, err
		}

		page.Failed = failed != 0
		page.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at")
		if err != nil {
			return nil, err
		}

		pages = append(pages, &page)
	}

	return pages, rows.Err()
}

// FindSectionID returns the ID of the most recently saved section
// matching base URL and prefix.
func (s *ResultStore) FindSectionID(ctx context.Context, section webgenius.Section) (string, error) {
	var id string
	err := s.db.QueryRowContext(ctx, `
		SELECT id FROM sections
		WHERE base_url = ? AND prefix = ?
		ORDER BY created_at DESC
		LIMIT 1
	`, section.BaseURL, section.Prefix).Scan(&id)
	if err != nil {
		return "", webgenius.Errorf(webgenius.ENOTFOUND, "no saved result for section %s", section.URL())
	}
	return id, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
