package url

import (
	"testing"

	"github.com/bnema/tabshell/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

func TestClassifier_Classify(t *testing.T) {
	c := NewClassifier("https://home.example/", "https://search.example/search")

	tests := []struct {
		name string
		url  string
		want entity.DisplayedInfo
	}{
		{
			name: "search with query",
			url:  "https://search.example/search?q=reddit",
			want: entity.DisplayedInfo{Mode: entity.DisplayModeQuery, Text: "reddit"},
		},
		{
			name: "search with escaped query",
			url:  "https://search.example/search?src=nav&q=go+modules",
			want: entity.DisplayedInfo{Mode: entity.DisplayModeQuery, Text: "go modules"},
		},
		{
			name: "empty search",
			url:  "https://search.example/search",
			want: entity.DisplayedInfo{Mode: entity.DisplayModePlaceholder},
		},
		{
			name: "home page",
			url:  "https://home.example/",
			want: entity.DisplayedInfo{Mode: entity.DisplayModePlaceholder},
		},
		{
			name: "home page without slash",
			url:  "https://home.example",
			want: entity.DisplayedInfo{Mode: entity.DisplayModePlaceholder},
		},
		{
			name: "regular page",
			url:  "https://news.example/2",
			want: entity.DisplayedInfo{Mode: entity.DisplayModeURL, Text: "news.example"},
		},
		{
			name: "empty url",
			url:  "",
			want: entity.DisplayedInfo{Mode: entity.DisplayModeURL},
		},
		{
			name: "about page has no host",
			url:  "about:blank",
			want: entity.DisplayedInfo{Mode: entity.DisplayModeURL},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.url))
		})
	}
}

func TestClassifier_SearchQuery(t *testing.T) {
	c := NewClassifier("https://home.example/", "https://search.example/search")

	q, ok := c.SearchQuery("https://search.example/search?q=")
	assert.True(t, ok)
	assert.Empty(t, q)

	_, ok = c.SearchQuery("https://other.example/search?q=x")
	assert.False(t, ok)
}
