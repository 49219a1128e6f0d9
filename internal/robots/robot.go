package robots

import (
	"context"
	"net/url"
	"sync"
	"time"

	"github.com/markopoloparadox/web-crawler/internal/metadata"
	"github.com/markopoloparadox/web-crawler/internal/robots/cache"
)

/*
Checker enforces robots.txt policy on a URL after it is dequeued from
the frontier and before it is fetched.

Responsibilities
- Fetch robots.txt once per host, via RobotsFetcher
- Parse it into a ruleSet scoped to the configured user agent
- Cache the resulting ruleSet for the lifetime of the Checker (the
  service builds one and shares it across all crawls)
- Evaluate individual URLs against the cached ruleSet

When disabled, Checker allows everything without fetching or recording
anything. When the fetch fails, it allows everything; the failure is
recorded through the metadata sink by RobotsFetcher.
*/
type Checker struct {
	enabled   bool
	userAgent string
	fetcher   *RobotsFetcher
	sink      metadata.Sink

	mu    sync.Mutex
	rules map[string]ruleSet
}

// NewChecker builds a Checker. A Checker built with enabled=false allows
// every URL; userAgent is matched against robots.txt groups.
func NewChecker(enabled bool, userAgent string, sink metadata.Sink) *Checker {
	return &Checker{
		enabled:   enabled,
		userAgent: userAgent,
		fetcher:   NewRobotsFetcher(sink, userAgent, cache.NewMemoryCache()),
		sink:      sink,
		rules:     make(map[string]ruleSet),
	}
}

// Allowed reports whether target may be fetched. It fetches and caches
// robots.txt for target's host on first use within the Checker's
// lifetime; subsequent calls for the same host reuse the cached
// ruleSet without any network access.
func (c *Checker) Allowed(ctx context.Context, target url.URL) bool {
	if !c.enabled {
		return true
	}

	rs, ok := c.ruleSetFor(ctx, target)
	if !ok {
		return true
	}
	return rs.Evaluate(target).Allowed
}

func (c *Checker) ruleSetFor(ctx context.Context, target url.URL) (ruleSet, bool) {
	host := target.Host

	c.mu.Lock()
	if rs, found := c.rules[host]; found {
		c.mu.Unlock()
		return rs, true
	}
	c.mu.Unlock()

	scheme := target.Scheme
	if scheme == "" {
		scheme = "https"
	}

	result, robotsErr := c.fetcher.Fetch(ctx, scheme, host)
	if robotsErr != nil {
		// Fetch failure already recorded by the fetcher. A host with
		// no retrievable robots.txt is treated as allow-everything.
		return ruleSet{}, false
	}

	rs := MapResponseToRuleSet(result.Response, c.userAgent, time.Now())

	c.mu.Lock()
	c.rules[host] = rs
	c.mu.Unlock()

	return rs, true
}
