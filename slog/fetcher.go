// Package slog provides logging decorators for fetchers and
// discoverers.
package slog

import (
	"context"
	"log/slog"
	"time"

	webgenius "github.com/Abhishek-yadv/WebGenius"
)

// Ensure LoggingFetcher implements webgenius.Fetcher.
var _ webgenius.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with per-request logging.
type LoggingFetcher struct {
	next   webgenius.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next webgenius.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the outcome.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) webgenius.FetchOutcome {
	begin := time.Now()
	outcome := f.next.Fetch(ctx, url)
	f.logger.Info("fetch",
		"url", url,
		"outcome", outcome.Kind.String(),
		"bytes", len(outcome.HTML),
		"duration", time.Since(begin),
		"err", outcome.Err,
	)
	return outcome
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
