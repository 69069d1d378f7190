package search

import (
	"context"
	"net/url"
	"strings"
)

// Result represents a single video hit from any provider.
type Result struct {
	// SourceID is the provider-independent video identifier when one can be
	// derived from the URL (a YouTube video id), otherwise the URL itself.
	SourceID string `json:"sourceId"`
	Title    string `json:"title"`
	URL      string `json:"url"`
	Channel  string `json:"channel"`
	Snippet  string `json:"snippet"`
	Source   string `json:"-"` // provider name for observability
}

// Provider is a minimal interface for media search providers.
type Provider interface {
	Search(ctx context.Context, query string, limit int) ([]Result, error)
	Name() string
}

// Func adapts a plain search function to Provider.
type Func func(ctx context.Context, query string, limit int) ([]Result, error)

func (f Func) Search(ctx context.Context, query string, limit int) ([]Result, error) {
	return f(ctx, query, limit)
}

func (Func) Name() string { return "func" }

// DomainPolicy allows providers to filter results by host. Denylist takes
// precedence over Allowlist; an empty Allowlist allows every host. Entries
// match the host itself and its subdomains.
type DomainPolicy struct {
    Allowlist []string
    Denylist  []string
}

// Allows reports whether rawURL passes the policy. A nil policy allows all.
func (p *DomainPolicy) Allows(rawURL string) bool {
    if p == nil {
        return true
    }
    u, err := url.Parse(rawURL)
    if err != nil || u.Hostname() == "" {
        return false
    }
    host := strings.ToLower(u.Hostname())
    for _, d := range p.Denylist {
        if hostMatches(host, d) {
            return false
        }
    }
    if len(p.Allowlist) == 0 {
        return true
    }
    for _, a := range p.Allowlist {
        if hostMatches(host, a) {
            return true
        }
    }
    return false
}

func hostMatches(host, domain string) bool {
    domain = strings.ToLower(strings.TrimSpace(domain))
    if domain == "" {
        return false
    }
    return host == domain || strings.HasSuffix(host, "."+domain)
}

// VideoID extracts a YouTube video id from watch, short-link, embed and
// shorts URLs. It returns "" for anything else.
func VideoID(rawURL string) string {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return ""
	}
	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	host = strings.TrimPrefix(host, "m.")
	switch host {
	case "youtu.be":
		return validID(strings.Trim(u.Path, "/"))
	case "youtube.com", "youtube-nocookie.com":
		if u.Path == "/watch" {
			return validID(u.Query().Get("v"))
		}
		for _, prefix := range []string{"/embed/", "/shorts/", "/v/", "/live/"} {
			if strings.HasPrefix(u.Path, prefix) {
				return validID(strings.TrimPrefix(u.Path, prefix))
			}
		}
	}
	return ""
}

func validID(s string) string {
	if i := strings.IndexAny(s, "/?&"); i >= 0 {
		s = s[:i]
	}
	if len(s) != 11 {
		return ""
	}
	for _, r := range s {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '-' || r == '_') {
			return ""
		}
	}
	return s
}

// sourceIDFor prefers a derived video id and falls back to the URL.
func sourceIDFor(rawURL string) string {
	if id := VideoID(rawURL); id != "" {
		return id
	}
	return rawURL
}
