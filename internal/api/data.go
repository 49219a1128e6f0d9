package api

// CrawlRequest is the wire shape of a POST /spider body.
type CrawlRequest struct {
	Address      string `json:"address" binding:"required"`
	MaxDepth     *int   `json:"max_depth,omitempty"`
	MaxPages     *int   `json:"max_pages,omitempty"`
	RobotsTxt    *bool  `json:"robots_txt,omitempty"`
	ArchivePages bool   `json:"archive_pages,omitempty"`
}

// CrawlResponse is the wire shape of a successful POST /spider reply.
type CrawlResponse struct {
	ID string `json:"id"`
}
