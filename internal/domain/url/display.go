package url

import (
	"net/url"
	"strings"

	"github.com/bnema/tabshell/internal/domain/entity"
)

// Classifier decides how the URL bar shows a tab's URL.
// It is pure: the result depends only on the URL and the two canonical URLs.
type Classifier struct {
	HomeURL   string
	SearchURL string
}

// NewClassifier creates a Classifier for the given home and search URLs.
func NewClassifier(homeURL, searchURL string) Classifier {
	return Classifier{HomeURL: homeURL, SearchURL: searchURL}
}

// IsSearchURL reports whether raw points at the search results page.
func (c Classifier) IsSearchURL(raw string) bool {
	return c.SearchURL != "" && strings.HasPrefix(raw, c.SearchURL)
}

// IsHomeURL reports whether raw is the home page.
func (c Classifier) IsHomeURL(raw string) bool {
	if raw == "" || c.HomeURL == "" {
		return false
	}
	return strings.TrimSuffix(raw, "/") == strings.TrimSuffix(c.HomeURL, "/")
}

// SearchQuery returns the q parameter of a search URL.
func (c Classifier) SearchQuery(raw string) (string, bool) {
	if !c.IsSearchURL(raw) {
		return "", false
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", false
	}
	values := u.Query()
	if !values.Has("q") {
		return "", false
	}
	return values.Get("q"), true
}

// Classify maps raw to the URL bar display mode and text.
func (c Classifier) Classify(raw string) entity.DisplayedInfo {
	if q, ok := c.SearchQuery(raw); ok {
		return entity.DisplayedInfo{Mode: entity.DisplayModeQuery, Text: q}
	}
	if c.IsSearchURL(raw) || c.IsHomeURL(raw) {
		return entity.DisplayedInfo{Mode: entity.DisplayModePlaceholder}
	}
	return entity.DisplayedInfo{Mode: entity.DisplayModeURL, Text: Host(raw)}
}

// Host returns the host of raw, or "" if it has none.
func Host(raw string) string {
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return u.Hostname()
}
