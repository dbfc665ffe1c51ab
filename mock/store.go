package mock

import (
	"context"

	webgenius "github.com/Abhishek-yadv/WebGenius"
)

var _ webgenius.ResultStore = (*ResultStore)(nil)

// ResultStore is a mock implementation of webgenius.ResultStore.
type ResultStore struct {
	SaveResultFn func(ctx context.Context, result *webgenius.SectionResult) error
}

func (s *ResultStore) SaveResult(ctx context.Context, result *webgenius.SectionResult) error {
	return s.SaveResultFn(ctx, result)
}

var _ webgenius.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of webgenius.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return d.WaitFn(ctx, domain)
}
