package url

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"http://example.com", "http://example.com"},
		{"https://example.com", "https://example.com"},
		{"file:///tmp/page.html", "file:///tmp/page.html"},
		{"about:blank", "about:blank"},
		{"example.com/docs", "https://example.com/docs"},
		{"hello world", "hello world"},
		{"golang", "golang"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestLooksLikeURL(t *testing.T) {
	assert.True(t, LooksLikeURL("github.com"))
	assert.True(t, LooksLikeURL("about:blank"))
	assert.False(t, LooksLikeURL("golang tutorial"))
	assert.False(t, LooksLikeURL("go.dev\tdocs"))
	assert.False(t, LooksLikeURL(""))
}

func TestExtractDomain(t *testing.T) {
	assert.Equal(t, "youtube.com", ExtractDomain("https://www.youtube.com/watch"))
	assert.Equal(t, "localhost:8080", ExtractDomain("http://localhost:8080/"))
	assert.Equal(t, "", ExtractDomain("not a url"))
	assert.Equal(t, "", ExtractDomain(""))
}

func TestFaviconFileName(t *testing.T) {
	assert.Equal(t, "localhost_8080.ico", FaviconFileName("localhost:8080"))
	assert.Equal(t, "example.com.ico", FaviconFileName("example.com"))
}
