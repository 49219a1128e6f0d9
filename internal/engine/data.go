package engine

import "net/url"

// CrawlOptions is the resolved set of bounds for one crawl run, derived
// from a CrawlRequest by the HTTP façade.
type CrawlOptions struct {
	BaseURL      url.URL
	MaxDepth     *int
	MaxPages     *int
	RobotsTxt    bool
	ArchivePages bool
}

// Result is the outcome of one completed crawl run: the unordered set
// of pages visited, available whether or not pre-flight succeeded.
type Result struct {
	Visited []url.URL
}
