package url

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildSearchURL(t *testing.T) {
	const searchURL = "https://search.example/search"

	tests := []struct {
		name       string
		input      string
		want       string
		wantSearch bool
	}{
		{name: "empty", input: "", want: ""},
		{name: "domain", input: "example.com", want: "https://example.com"},
		{name: "query", input: "golang tutorial", want: "https://search.example/search?q=golang+tutorial", wantSearch: true},
		{name: "trimmed", input: "  reddit ", want: "https://search.example/search?q=reddit", wantSearch: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, isSearch := BuildSearchURL(tt.input, searchURL)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantSearch, isSearch)
		})
	}
}

func TestSearchURLFor_ExistingQuery(t *testing.T) {
	assert.Equal(t, "https://s.example/?src=1&q=a%26b", SearchURLFor("https://s.example/?src=1", "a&b"))
}
