package frontier

import (
	"net/url"
	"sync"
)

/*
Frontier Responsibilities
- Maintain pending/visited state for one crawl
- Dedup via commit-on-dequeue
- Track the minimum known depth for each pending URL
- Know nothing about fetching, extraction, or storage

It is a data structure + pure state transitions, not a pipeline
executor: no method here performs I/O.

Invariants
- visited ∩ keys(pending) = ∅
- |visited| ≤ options.MaxPages, if set
- any URL placed into pending has depth ≤ options.MaxDepth, if set
- at construction, pending = {baseURL: 0} and visited = ∅

Commit-on-dequeue. Next marks a URL visited the moment it is handed
out, not when the worker finishes with it — this is what prevents two
workers from racing on the same URL and is the reason a dequeued task
can never be retried.
*/

type pendingEntry struct {
	url   url.URL
	depth int
}

type State struct {
	mu            sync.Mutex
	baseURL       url.URL
	visited       map[string]url.URL
	pending       map[string]pendingEntry
	options       Options
	activeWorkers int
}

func NewState(baseURL url.URL, options Options) *State {
	key := baseURL.String()
	return &State{
		baseURL: baseURL,
		visited: make(map[string]url.URL),
		pending: map[string]pendingEntry{key: {url: baseURL, depth: 0}},
		options: options,
	}
}

func (s *State) BaseURL() url.URL {
	return s.baseURL
}

// Next dequeues one pending task if the page-count bound allows it and
// one is available. On success the task's URL is committed into
// visited and the active-worker count is incremented in the same
// critical section that performed the dequeue — this is what makes
// the termination predicate below safe to observe from another
// goroutine without a second lock acquisition.
//
// quiescent reports whether, at the instant of this call, there was no
// work to hand out AND no worker was already active. A caller that
// sees ok=false and quiescent=true may safely conclude the crawl is
// finished: no future call to Next can ever return a task again,
// because any worker that could still produce links is accounted for
// by activeWorkers.
func (s *State) Next() (task Task, ok bool, quiescent bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.options.MaxPages != nil && len(s.visited) >= *s.options.MaxPages {
		return Task{}, false, s.activeWorkers == 0
	}

	for key, entry := range s.pending {
		delete(s.pending, key)
		s.visited[key] = entry.url
		s.activeWorkers++
		return NewTask(entry.url, entry.depth), true, false
	}

	return Task{}, false, s.activeWorkers == 0
}

// EndWork decrements the active-worker count. Callers must call this
// exactly once for every task Next() returned, regardless of whether
// processing succeeded.
func (s *State) EndWork() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeWorkers--
}

// AddLinks folds newly discovered links into pending at parentDepth+1.
// A link already visited is skipped; a link already pending has its
// depth lowered to the minimum of the two observations; everything
// else is inserted fresh.
func (s *State) AddLinks(links []url.URL, parentDepth int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	newDepth := parentDepth + 1
	if s.options.MaxDepth != nil && newDepth > *s.options.MaxDepth {
		return
	}

	for _, link := range links {
		key := link.String()
		if _, seen := s.visited[key]; seen {
			continue
		}
		if existing, pending := s.pending[key]; pending {
			if newDepth < existing.depth {
				s.pending[key] = pendingEntry{url: link, depth: newDepth}
			}
			continue
		}
		s.pending[key] = pendingEntry{url: link, depth: newDepth}
	}
}

// Visited returns an unordered snapshot of every URL committed so far.
func (s *State) Visited() []url.URL {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]url.URL, 0, len(s.visited))
	for _, u := range s.visited {
		result = append(result, u)
	}
	return result
}
