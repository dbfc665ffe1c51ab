package mock

import (
	"context"

	webgenius "github.com/Abhishek-yadv/WebGenius"
)

var _ webgenius.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of webgenius.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) webgenius.FetchOutcome
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) webgenius.FetchOutcome {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}
