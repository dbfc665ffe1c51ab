package mock

import webgenius "github.com/Abhishek-yadv/WebGenius"

var _ webgenius.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of webgenius.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*webgenius.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*webgenius.ExtractResult, error) {
	return e.ExtractFn(html)
}
