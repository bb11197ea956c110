package url

import (
	"net/url"
	"strings"
)

// SearchURLFor builds the search results URL for query.
func SearchURLFor(searchURL, query string) string {
	sep := "?"
	if strings.Contains(searchURL, "?") {
		sep = "&"
	}
	return searchURL + sep + "q=" + url.QueryEscape(query)
}

// BuildSearchURL resolves URL bar input: URL-like input is normalized,
// anything else becomes a search on searchURL.
// The second return value reports whether the input was a search query.
func BuildSearchURL(input, searchURL string) (string, bool) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", false
	}
	if LooksLikeURL(input) {
		return Normalize(input), false
	}
	return SearchURLFor(searchURL, input), true
}
