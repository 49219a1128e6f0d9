package frontier

import "net/url"

/*
Frontier Responsibilities
- Maintain pending/visited state for one crawl
- Dedup via commit-on-dequeue
- Track the minimum known depth for each pending URL
- Know nothing about fetching, extraction, or storage

It is a data structure + pure state transitions, not a pipeline executor.
*/

// Task is one unit of work returned by State.Next: a committed URL at
// the depth it was discovered.
type Task struct {
	url   url.URL
	depth int
}

func NewTask(u url.URL, depth int) Task {
	return Task{url: u, depth: depth}
}

func (t Task) URL() url.URL {
	return t.url
}

func (t Task) Depth() int {
	return t.depth
}

// Options resolves the optional bounds of a CrawlRequest. A nil pointer
// means the bound is unset.
type Options struct {
	MaxDepth *int
	MaxPages *int
}
