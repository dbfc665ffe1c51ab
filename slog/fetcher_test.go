package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	webgenius "github.com/Abhishek-yadv/WebGenius"
	"github.com/Abhishek-yadv/WebGenius/mock"
	wgslog "github.com/Abhishek-yadv/WebGenius/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("logs fetch with outcome, bytes and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) webgenius.FetchOutcome {
				return webgenius.HTMLOutcome("<html>content</html>")
			},
		}

		fetcher := wgslog.NewLoggingFetcher(inner, logger)
		outcome := fetcher.Fetch(context.Background(), "https://example.com/docs")

		assert.Equal(t, webgenius.OutcomeHTML, outcome.Kind)
		output := buf.String()
		assert.Contains(t, output, "fetch")
		assert.Contains(t, output, "url=https://example.com/docs")
		assert.Contains(t, output, "outcome=html")
		assert.Contains(t, output, "bytes=20")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) webgenius.FetchOutcome {
				return webgenius.FailedOutcome(errors.New("network error"))
			},
		}

		fetcher := wgslog.NewLoggingFetcher(inner, logger)
		outcome := fetcher.Fetch(context.Background(), "https://example.com/docs")

		assert.Equal(t, webgenius.OutcomeFailed, outcome.Kind)
		output := buf.String()
		assert.Contains(t, output, "outcome=failed")
		assert.Contains(t, output, "err=\"network error\"")
	})
}

func TestLoggingFetcher_Close(t *testing.T) {
	t.Parallel()

	t.Run("delegates to inner fetcher", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		closeCalled := false
		inner := &mock.Fetcher{
			CloseFn: func() error {
				closeCalled = true
				return nil
			},
		}

		fetcher := wgslog.NewLoggingFetcher(inner, logger)
		err := fetcher.Close()

		require.NoError(t, err)
		assert.True(t, closeCalled)
	})
}
