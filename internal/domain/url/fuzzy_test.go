package url

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFuzzyMatch(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{"identical", "https://example.com/a", "https://example.com/a", true},
		{"www prefix", "https://www.example.com/a", "https://example.com/a", true},
		{"mobile prefix", "https://m.example.com/a", "https://example.com/a", true},
		{"mobile word prefix", "https://mobile.example.com/a", "https://www.example.com/a", true},
		{"scheme differs", "http://example.com/a", "https://example.com/a", true},
		{"trailing slash", "https://example.com/a/", "https://example.com/a", true},
		{"wikipedia mobile", "https://en.m.wikipedia.org/wiki/Go", "https://en.wikipedia.org/wiki/Go", true},
		{"query kept", "https://example.com/a?x=1", "https://example.com/a?x=2", false},
		{"different path", "https://example.com/a", "https://example.com/b", false},
		{"non http", "about:blank", "about:blank", false},
		{"file scheme", "file:///tmp/a", "file:///tmp/a", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FuzzyMatch(tt.a, tt.b))
		})
	}
}

func TestFuzzyKey(t *testing.T) {
	key, ok := FuzzyKey("https://www.Example.com/path/")
	assert.True(t, ok)
	assert.Equal(t, "example.com/path", key)
}
