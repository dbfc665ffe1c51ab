package mock

import webgenius "github.com/Abhishek-yadv/WebGenius"

var _ webgenius.Converter = (*Converter)(nil)

// Converter is a mock implementation of webgenius.Converter.
type Converter struct {
	ConvertFn func(url, html string) (string, error)
}

func (c *Converter) Convert(url, html string) (string, error) {
	return c.ConvertFn(url, html)
}

var _ webgenius.Cleaner = (*Cleaner)(nil)

// Cleaner is a mock implementation of webgenius.Cleaner.
type Cleaner struct {
	CleanFn func(markdown string) string
}

func (c *Cleaner) Clean(markdown string) string {
	return c.CleanFn(markdown)
}
