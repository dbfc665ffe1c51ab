package slog

import (
	"context"
	"log/slog"
	"time"

	webgenius "github.com/Abhishek-yadv/WebGenius"
)

// Ensure LoggingDiscoverer implements webgenius.Discoverer.
var _ webgenius.Discoverer = (*LoggingDiscoverer)(nil)

// LoggingDiscoverer wraps a Discoverer with per-section logging.
type LoggingDiscoverer struct {
	next   webgenius.Discoverer
	logger *slog.Logger
}

// NewLoggingDiscoverer creates a new LoggingDiscoverer.
func NewLoggingDiscoverer(next webgenius.Discoverer, logger *slog.Logger) *LoggingDiscoverer {
	return &LoggingDiscoverer{next: next, logger: logger}
}

// Discover delegates to the wrapped discoverer and logs the operation.
func (d *LoggingDiscoverer) Discover(ctx context.Context, section webgenius.Section) (urls []string, err error) {
	defer func(begin time.Time) {
		d.logger.Info("link discovery",
			"url", section.URL(),
			"count", len(urls),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return d.next.Discover(ctx, section)
}
