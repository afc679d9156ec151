// ABOUTME: Link classifier decides whether a URL points back at the source platform
// ABOUTME: Unparseable input is treated as own-domain so it is never promoted to an external link

package links

import (
	"net/url"
	"strings"
)

// DefaultOwnDomains is the hosting family of the default feed provider
var DefaultOwnDomains = []string{"reddit.com", "redd.it", "redditmedia.com", "redditstatic.com"}

// Classifier matches hosts against an allowlist of own-domain hostnames
type Classifier struct {
	domains []string
}

// NewClassifier creates a classifier for the given hostnames.
// Entries are lowercased and a leading "www." is dropped; blanks are ignored.
func NewClassifier(domains []string) *Classifier {
	normalized := make([]string, 0, len(domains))
	for _, d := range domains {
		d = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(d)), "www.")
		d = strings.Trim(d, ".")
		if d != "" {
			normalized = append(normalized, d)
		}
	}
	return &Classifier{domains: normalized}
}

// Domains returns the normalized allowlist
func (c *Classifier) Domains() []string {
	out := make([]string, len(c.domains))
	copy(out, c.domains)
	return out
}

// IsOwnDomain reports whether rawURL belongs to the allowlist.
// Malformed URLs and URLs without a host report true.
func (c *Classifier) IsOwnDomain(rawURL string) bool {
	host, ok := hostOf(rawURL)
	if !ok {
		return true
	}

	for _, d := range c.domains {
		if host == d || strings.HasSuffix(host, "."+d) {
			return true
		}
	}
	return false
}

// hostOf extracts the lowercased host without port and without one leading "www."
func hostOf(rawURL string) (string, bool) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return "", false
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", false
	}

	host := strings.ToLower(parsed.Hostname())
	host = strings.TrimSuffix(host, ".")
	host = strings.TrimPrefix(host, "www.")
	if host == "" {
		return "", false
	}
	return host, true
}
