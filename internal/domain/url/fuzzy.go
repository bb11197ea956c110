package url

import (
	"net/url"
	"regexp"
	"strings"
)

var (
	mobilePrefix    = regexp.MustCompile(`^(www|mobile|m)\.`)
	mobileWikipedia = regexp.MustCompile(`^(..)\.m\.wikipedia\.org`)
)

// FuzzyKey reduces an http(s) URL to a key shared by its desktop and mobile
// variants, so that "https://m.example.com/a/" and "http://www.example.com/a"
// match. Other schemes have no key.
func FuzzyKey(raw string) (string, bool) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", false
	}
	host := strings.ToLower(u.Host)
	host = mobilePrefix.ReplaceAllString(host, "")
	host = mobileWikipedia.ReplaceAllString(host, "$1.wikipedia.org")

	key := host + strings.TrimSuffix(u.EscapedPath(), "/")
	if u.RawQuery != "" {
		key += "?" + u.RawQuery
	}
	return key, true
}

// FuzzyMatch reports whether two URLs are variants of the same page.
func FuzzyMatch(a, b string) bool {
	ka, ok := FuzzyKey(a)
	if !ok {
		return false
	}
	kb, ok := FuzzyKey(b)
	return ok && ka == kb
}
