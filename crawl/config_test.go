package crawl_test

import (
	"testing"

	"github.com/Abhishek-yadv/WebGenius/crawl"
	"github.com/stretchr/testify/assert"
)

func TestConfig_Normalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   int
		want int
	}{
		{"zero uses default", 0, crawl.DefaultConcurrency},
		{"negative clamps to one", -5, 1},
		{"over maximum clamps", 200, crawl.MaxConcurrency},
		{"in range unchanged", 30, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := crawl.Config{MaxConcurrency: tt.in}.Normalize()
			assert.Equal(t, tt.want, cfg.MaxConcurrency)
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := crawl.DefaultConfig()

	assert.Equal(t, crawl.DefaultConcurrency, cfg.MaxConcurrency)
	assert.True(t, cfg.FallbackToRender)
	assert.False(t, cfg.HTTPOnly)
}
