package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docscrape"
)

// Ensure LoggingResponseCache implements docscrape.ResponseCache.
var _ docscrape.ResponseCache = (*LoggingResponseCache)(nil)

// LoggingResponseCache wraps a ResponseCache with debug logging.
// Cache errors are logged at warn level since callers treat them as misses.
type LoggingResponseCache struct {
	next   docscrape.ResponseCache
	logger *slog.Logger
}

// NewLoggingResponseCache creates a new LoggingResponseCache.
func NewLoggingResponseCache(next docscrape.ResponseCache, logger *slog.Logger) *LoggingResponseCache {
	return &LoggingResponseCache{next: next, logger: logger}
}

// Get delegates to the wrapped cache and logs hits and misses.
func (c *LoggingResponseCache) Get(ctx context.Context, url string) (body []byte, ok bool, err error) {
	defer func(begin time.Time) {
		if err != nil {
			c.logger.WarnContext(ctx, "cache get failed", "url", url, "err", err)
			return
		}
		c.logger.DebugContext(ctx, "cache get",
			"url", url,
			"hit", ok,
			"bytes", len(body),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return c.next.Get(ctx, url)
}

// Put delegates to the wrapped cache and logs the write.
func (c *LoggingResponseCache) Put(ctx context.Context, url string, body []byte) (err error) {
	defer func(begin time.Time) {
		if err != nil {
			c.logger.WarnContext(ctx, "cache put failed", "url", url, "err", err)
			return
		}
		c.logger.DebugContext(ctx, "cache put",
			"url", url,
			"bytes", len(body),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return c.next.Put(ctx, url, body)
}

// Clear delegates to the wrapped cache.
func (c *LoggingResponseCache) Clear(ctx context.Context) (err error) {
	defer func() {
		if err != nil {
			c.logger.ErrorContext(ctx, "cache clear failed", "err", err)
			return
		}
		c.logger.InfoContext(ctx, "cache cleared")
	}()
	return c.next.Clear(ctx)
}
