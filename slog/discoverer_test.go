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

func TestLoggingDiscoverer_Discover(t *testing.T) {
	t.Parallel()

	section := webgenius.Section{BaseURL: "https://example.com", Prefix: "docs"}

	t.Run("logs discovery with count and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Discoverer{
			DiscoverFn: func(ctx context.Context, section webgenius.Section) ([]string, error) {
				return []string{"https://example.com/docs/a", "https://example.com/docs/b"}, nil
			},
		}

		d := wgslog.NewLoggingDiscoverer(inner, logger)
		urls, err := d.Discover(context.Background(), section)

		require.NoError(t, err)
		assert.Len(t, urls, 2)
		output := buf.String()
		assert.Contains(t, output, "link discovery")
		assert.Contains(t, output, "url=https://example.com/docs")
		assert.Contains(t, output, "count=2")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Discoverer{
			DiscoverFn: func(ctx context.Context, section webgenius.Section) ([]string, error) {
				return nil, errors.New("connection failed")
			},
		}

		d := wgslog.NewLoggingDiscoverer(inner, logger)
		_, err := d.Discover(context.Background(), section)

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "link discovery")
		assert.Contains(t, output, "err=\"connection failed\"")
	})
}
