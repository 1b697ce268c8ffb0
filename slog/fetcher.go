// Package slog provides log/slog decorators for docscrape services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docscrape"
)

// Ensure LoggingFetcher implements docscrape.Fetcher.
var _ docscrape.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with debug logging.
type LoggingFetcher struct {
	next   docscrape.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next docscrape.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the request.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (html string, err error) {
	defer func(begin time.Time) {
		f.log(ctx, "fetch", url, len(html), time.Since(begin), err)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// FetchBytes delegates to the wrapped fetcher and logs the request.
func (f *LoggingFetcher) FetchBytes(ctx context.Context, url string) (data []byte, err error) {
	defer func(begin time.Time) {
		f.log(ctx, "fetch bytes", url, len(data), time.Since(begin), err)
	}(time.Now())
	return f.next.FetchBytes(ctx, url)
}

func (f *LoggingFetcher) log(ctx context.Context, msg, url string, n int, d time.Duration, err error) {
	level := slog.LevelDebug
	if err != nil {
		level = slog.LevelWarn
	}
	f.logger.Log(ctx, level, msg,
		"url", url,
		"bytes", n,
		"duration", d,
		"err", err,
	)
}
