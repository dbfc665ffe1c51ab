package bloom_test

import (
	"fmt"
	"testing"

	"github.com/Abhishek-yadv/WebGenius/bloom"
	"github.com/stretchr/testify/assert"
)

func TestFilter_AddAndTest(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	assert.False(t, f.Test("https://example.com/docs/intro"))

	f.Add("https://example.com/docs/intro")

	assert.True(t, f.Test("https://example.com/docs/intro"))
	assert.False(t, f.Test("https://example.com/docs/setup"))
}

func TestFilter_NoFalseNegatives(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(10000, 0.01)

	urls := make([]string, 500)
	for i := range urls {
		urls[i] = fmt.Sprintf("https://example.com/docs/page-%d", i)
		f.Add(urls[i])
	}

	for _, u := range urls {
		assert.True(t, f.Test(u), "added URL must always test true: %s", u)
	}
}
