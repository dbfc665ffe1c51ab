package crawl

import (
	"context"
	"log/slog"
	"time"

	webgenius "github.com/Abhishek-yadv/WebGenius"
)

// FetchFunc is the signature for a fetch function.
type FetchFunc func(ctx context.Context, url string) webgenius.FetchOutcome

// DefaultRetryDelays returns the backoff delays for direct-tier
// retries: 300ms then 600ms, i.e. two retries with doubling backoff.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{300 * time.Millisecond, 600 * time.Millisecond}
}

// FetchWithRetry fetches a URL, retrying failed outcomes with the
// default backoff delays.
func FetchWithRetry(ctx context.Context, url string, fetch FetchFunc, logger *slog.Logger) webgenius.FetchOutcome {
	return FetchWithRetryDelays(ctx, url, fetch, logger, DefaultRetryDelays())
}

// FetchWithRetryDelays is like FetchWithRetry but with configurable
// delays, so tests run without real waits. Only failed outcomes are
// retried; HTML and empty outcomes return immediately.
func FetchWithRetryDelays(ctx context.Context, url string, fetch FetchFunc, logger *slog.Logger, delays []time.Duration) webgenius.FetchOutcome {
	maxAttempts := len(delays) + 1

	var last webgenius.FetchOutcome
	for attempt := 0; attempt < maxAttempts; attempt++ {
		outcome := fetch(ctx, url)
		if outcome.Kind != webgenius.OutcomeFailed {
			return outcome
		}
		last = outcome

		if attempt >= maxAttempts-1 {
			break
		}

		if logger != nil {
			logger.Debug("retrying fetch",
				slog.String("url", url),
				slog.Int("attempt", attempt+2),
				slog.Any("error", outcome.Err),
			)
		}

		select {
		case <-ctx.Done():
			return webgenius.FailedOutcome(ctx.Err())
		case <-time.After(delays[attempt]):
		}
	}

	return last
}
