package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/fwojciec/fehwiki"
)

// DefaultDocumentTTL is how long a cached page is served before it is
// fetched again.
const DefaultDocumentTTL = 24 * time.Hour

// Compile-time interface verification.
var _ fehwiki.DocumentFetcher = (*DocumentCache)(nil)

// DocumentCache is a read-through page cache in front of another
// DocumentFetcher. Pages are keyed by the requested title, ignoring case.
type DocumentCache struct {
	db   *DB
	next fehwiki.DocumentFetcher

	// TTL is the maximum age of a cached page. Zero disables expiry.
	TTL time.Duration

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// NewDocumentCache creates a new DocumentCache.
func NewDocumentCache(db *DB, next fehwiki.DocumentFetcher) *DocumentCache {
	return &DocumentCache{db: db, next: next, TTL: DefaultDocumentTTL, Now: time.Now}
}

// FetchDocument returns the cached page for title if it is fresh, and
// fetches and stores it otherwise.
func (c *DocumentCache) FetchDocument(ctx context.Context, title string) (*fehwiki.Document, error) {
	doc, err := c.FindDocument(ctx, title)
	if err == nil && c.fresh(doc) {
		return doc, nil
	}
	if err != nil && fehwiki.ErrorCode(err) != fehwiki.ENOTFOUND {
		return nil, err
	}

	doc, err = c.next.FetchDocument(ctx, title)
	if err != nil {
		return nil, err
	}
	if err := c.SaveDocument(ctx, title, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (c *DocumentCache) fresh(doc *fehwiki.Document) bool {
	return c.TTL == 0 || c.Now().Sub(doc.FetchedAt) < c.TTL
}

// FindDocument retrieves the cached page stored under title.
// Returns ENOTFOUND if the page is not cached.
func (c *DocumentCache) FindDocument(ctx context.Context, title string) (*fehwiki.Document, error) {
	var doc fehwiki.Document
	var categories, fetchedAt string

	err := c.db.QueryRowContext(ctx, `
		SELECT title, html, categories, content_hash, fetched_at
		FROM pages
		WHERE title = ?
	`, title).Scan(&doc.Title, &doc.HTML, &categories, &doc.ContentHash, &fetchedAt)
	if err == sql.ErrNoRows {
		return nil, fehwiki.Errorf(fehwiki.ENOTFOUND, "page %q not cached", title)
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(categories), &doc.Categories); err != nil {
		return nil, fehwiki.Errorf(fehwiki.EINTERNAL, "invalid cached categories for %q: %v", title, err)
	}
	if doc.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at"); err != nil {
		return nil, err
	}

	return &doc, nil
}

// SaveDocument stores doc under title, replacing any cached copy.
func (c *DocumentCache) SaveDocument(ctx context.Context, title string, doc *fehwiki.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	categories, err := json.Marshal(doc.Categories)
	if err != nil {
		return err
	}

	_, err = c.db.ExecContext(ctx, `
		INSERT INTO pages (title, html, categories, content_hash, fetched_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (title) DO UPDATE SET
			html = excluded.html,
			categories = excluded.categories,
			content_hash = excluded.content_hash,
			fetched_at = excluded.fetched_at
	`, title, doc.HTML, string(categories), doc.ContentHash, doc.FetchedAt.UTC().Format(time.RFC3339))
	return err
}

// ClearDocuments removes every cached page and returns how many were
// removed.
func (c *DocumentCache) ClearDocuments(ctx context.Context) (int64, error) {
	result, err := c.db.ExecContext(ctx, "DELETE FROM pages")
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
