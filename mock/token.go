package mock

import (
	"context"

	webgenius "github.com/Abhishek-yadv/WebGenius"
)

var _ webgenius.TokenCounter = (*TokenCounter)(nil)

// TokenCounter is a mock implementation of webgenius.TokenCounter.
type TokenCounter struct {
	CountTokensFn func(ctx context.Context, text string) (int, error)
}

func (t *TokenCounter) CountTokens(ctx context.Context, text string) (int, error) {
	return t.CountTokensFn(ctx, text)
}
