package mock

import (
	"context"

	webgenius "github.com/Abhishek-yadv/WebGenius"
)

var _ webgenius.Discoverer = (*Discoverer)(nil)

// Discoverer is a mock implementation of webgenius.Discoverer.
type Discoverer struct {
	DiscoverFn func(ctx context.Context, section webgenius.Section) ([]string, error)
}

func (d *Discoverer) Discover(ctx context.Context, section webgenius.Section) ([]string, error) {
	return d.DiscoverFn(ctx, section)
}
