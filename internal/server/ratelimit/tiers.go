package ratelimit

import (
	"strings"
	"time"
)

// Tier is the limit applied to one group of endpoints.
type Tier struct {
	Name   string
	Path   string        // exact path, or a prefix when it ends with "/"
	Method string        // empty matches any method
	Limit  int           // requests per Window; zero or less is unlimited
	Window time.Duration
	Burst  int // bucket capacity; defaults to Limit
}

// DefaultTiers returns the endpoint tiers of the matching service.
func DefaultTiers() []Tier {
	return []Tier{
		// Oracle-backed analyses (strictest)
		{Name: "analysis", Path: "/analyze/", Method: "POST", Limit: 30, Window: time.Minute, Burst: 5},
		// Candidate ranking (moderate)
		{Name: "matching", Path: "/match/candidates", Method: "POST", Limit: 120, Window: time.Minute, Burst: 20},
		// Probes and scraping (unlimited)
		{Name: "health", Path: "/health", Method: "GET"},
		{Name: "metrics", Path: "/metrics", Method: "GET"},
	}
}

// MatchTier returns the tier for a request, or nil when none matches.
// Exact paths win over prefixes.
func MatchTier(path, method string, tiers []Tier) *Tier {
	for i := range tiers {
		t := &tiers[i]
		if t.Path == path && methodMatches(t.Method, method) {
			return t
		}
	}
	for i := range tiers {
		t := &tiers[i]
		if strings.HasSuffix(t.Path, "/") && strings.HasPrefix(path, t.Path) && methodMatches(t.Method, method) {
			return t
		}
	}
	return nil
}

func methodMatches(want, got string) bool {
	return want == "" || strings.EqualFold(want, got)
}
