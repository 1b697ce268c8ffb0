package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/docscrape"
)

// Compile-time interface verification.
var _ docscrape.ResponseCache = (*ResponseCache)(nil)

// ResponseCache implements docscrape.ResponseCache using SQLite.
// Entries never expire; use Clear to invalidate.
type ResponseCache struct {
	db *DB
}

// NewResponseCache creates a new ResponseCache.
func NewResponseCache(db *DB) *ResponseCache {
	return &ResponseCache{db: db}
}

// cacheKey computes the xxHash of url as a hex string.
func cacheKey(url string) string {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, xxhash.Sum64String(url))
	return hex.EncodeToString(b)
}

// Get returns the cached body for url.
func (c *ResponseCache) Get(ctx context.Context, url string) ([]byte, bool, error) {
	var body []byte
	err := c.db.QueryRowContext(ctx, `
		SELECT body FROM responses WHERE key = ? AND url = ?
	`, cacheKey(url), url).Scan(&body)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return body, true, nil
}

// Put stores body for url, replacing any previous entry.
func (c *ResponseCache) Put(ctx context.Context, url string, body []byte) error {
	if body == nil {
		body = []byte{}
	}
	_, err := c.db.ExecContext(ctx, `
		INSERT INTO responses (key, url, body, fetched_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET url = excluded.url, body = excluded.body, fetched_at = excluded.fetched_at
	`, cacheKey(url), url, body, time.Now().UTC().Format(time.RFC3339))
	return err
}

// Clear removes every cached response.
func (c *ResponseCache) Clear(ctx context.Context) error {
	_, err := c.db.ExecContext(ctx, `DELETE FROM responses`)
	return err
}
