package engine

import (
	"context"
	"sync"
	"time"

	"github.com/markopoloparadox/web-crawler/internal/archiver"
	"github.com/markopoloparadox/web-crawler/internal/cache"
	"github.com/markopoloparadox/web-crawler/internal/extractor"
	"github.com/markopoloparadox/web-crawler/internal/fetcher"
	"github.com/markopoloparadox/web-crawler/internal/frontier"
	"github.com/markopoloparadox/web-crawler/internal/metadata"
	"github.com/markopoloparadox/web-crawler/internal/robots"
)

const pollInterval = 100 * time.Millisecond

/*
Engine drives one crawl from a base URL to quiescence with a fixed pool
of symmetric workers draining a shared Frontier State.

Worker loop
1. Dequeue and commit to visited in one atomic step (Frontier
   State.Next combines the dequeue with begin_work; see frontier.State).
2. If nothing is pending, check whether every worker is idle; if so,
   the crawl is globally quiescent and the worker exits. Otherwise it
   sleeps briefly and retries.
3. With a task in hand: consult the Document Cache, falling back to
   Fetcher on a miss.
4. On a fetched body: archive it if requested, extract links, and feed
   them back into Frontier State.
5. Release the task (end_work) and restart from step 1.
*/
type Engine struct {
	fetcher       fetcher.Fetcher
	extractor     extractor.LinkExtractor
	documentCache *cache.DocumentCache
	archiver      archiver.Archiver
	robotsChecker *robots.Checker
	sink          metadata.Sink
	userAgent     string
	concurrency   int
}

// New builds an Engine. concurrency is expected to already be clamped
// to [3, 50] by the caller (Config.Build does this).
func New(
	f fetcher.Fetcher,
	documentCache *cache.DocumentCache,
	arch archiver.Archiver,
	robotsChecker *robots.Checker,
	sink metadata.Sink,
	userAgent string,
	concurrency int,
) *Engine {
	return &Engine{
		fetcher:       f,
		extractor:     extractor.NewLinkExtractor(),
		documentCache: documentCache,
		archiver:      arch,
		robotsChecker: robotsChecker,
		sink:          sink,
		userAgent:     userAgent,
		concurrency:   concurrency,
	}
}

// Run executes one crawl to completion and returns the visited set.
func (e *Engine) Run(ctx context.Context, opts CrawlOptions) Result {
	if _, ok := e.fetcher.Fetch(ctx, 0, fetcher.NewFetchParam(opts.BaseURL, e.userAgent)); !ok {
		return Result{Visited: nil}
	}

	state := frontier.NewState(opts.BaseURL, frontier.Options{
		MaxDepth: opts.MaxDepth,
		MaxPages: opts.MaxPages,
	})

	var wg sync.WaitGroup
	for i := 0; i < e.concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			e.work(ctx, state, opts)
		}()
	}
	wg.Wait()

	visited := state.Visited()
	return Result{Visited: visited}
}

func (e *Engine) work(ctx context.Context, state *frontier.State, opts CrawlOptions) {
	for {
		task, ok, quiescent := state.Next()
		if !ok {
			if quiescent {
				return
			}
			time.Sleep(pollInterval)
			continue
		}

		e.process(ctx, state, opts, task)
		state.EndWork()
	}
}

func (e *Engine) process(ctx context.Context, state *frontier.State, opts CrawlOptions, task frontier.Task) {
	pageURL := task.URL()

	if opts.RobotsTxt && e.robotsChecker != nil && !e.robotsChecker.Allowed(ctx, pageURL) {
		return
	}

	body, cached := e.documentCache.Get(pageURL.String())
	if !cached {
		result, ok := e.fetcher.Fetch(ctx, task.Depth(), fetcher.NewFetchParam(pageURL, e.userAgent))
		if !ok {
			return
		}
		body = result.Body()
		e.documentCache.Put(pageURL.String(), body)
	}

	if opts.ArchivePages {
		e.archiver.Archive(opts.BaseURL, pageURL, body)
	}

	// Normalization is always relative to the crawl's base URL, never the
	// current page, per the root-relative concatenation rule.
	links := e.extractor.Extract(opts.BaseURL, body)
	state.AddLinks(links, task.Depth())
}
