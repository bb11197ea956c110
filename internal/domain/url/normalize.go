// Package url holds the URL rules of the shell: input normalization, search
// URLs, URL bar display classification and fuzzy tab matching.
package url

import (
	"net/url"
	"strings"
)

// knownSchemes are the prefixes URL bar input is accepted with as-is.
var knownSchemes = []string{"http://", "https://", "file://", "about:"}

func hasKnownScheme(input string) bool {
	for _, scheme := range knownSchemes {
		if strings.HasPrefix(input, scheme) {
			return true
		}
	}
	return false
}

// LooksLikeURL reports whether URL bar input should be loaded rather than
// searched for: it has a known scheme, or is a single dotted word.
func LooksLikeURL(input string) bool {
	if hasKnownScheme(input) {
		return true
	}
	return strings.Contains(input, ".") && !strings.ContainsAny(input, " \t")
}

// Normalize turns "example.com" into "https://example.com". Input with a
// known scheme, and input that is not URL-like, is returned unchanged.
func Normalize(input string) string {
	if input == "" || hasKnownScheme(input) || !LooksLikeURL(input) {
		return input
	}
	return "https://" + input
}

// ExtractDomain returns the host of rawURL without a leading "www.", or ""
// when rawURL has no host.
func ExtractDomain(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(u.Host, "www.")
}

// FaviconFileName is the cache file name of a domain's favicon. Characters
// that are unsafe in file names become underscores.
func FaviconFileName(domain string) string {
	safe := strings.Map(func(r rune) rune {
		if strings.ContainsRune(`:/\*?"<>|`, r) {
			return '_'
		}
		return r
	}, domain)
	return safe + ".ico"
}
