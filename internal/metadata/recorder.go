package metadata

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

/*
Metadata Collected
- Fetch timestamps
- HTTP status codes
- Crawl depth
- Archived artifact paths

Logging Goals
- Debuggable crawl behavior
- Post-run auditability
- Failure diagnostics

Structured logging is preferred. Recorder renders one line per event,
key=value attributes in a fixed order, to an io.Writer. It holds no
secondary state beyond the writer and is safe for concurrent use from
Engine workers.

Recorder is observational only: nothing in this package derives a
scheduling, retry, or termination decision from anything recorded here.
*/

// Sink is the narrow interface component packages depend on, so tests can
// substitute a no-op or capturing sink without pulling in *Recorder.
type Sink interface {
	RecordFetch(fetchURL string, httpStatus int, duration time.Duration, contentType string, crawlDepth int)
	RecordError(observedAt time.Time, packageName, action string, cause ErrorCause, errorString string, attrs []Attribute)
	RecordArtifact(kind ArtifactKind, path string, attrs []Attribute)
	RecordCrawlStats(stats CrawlStats)
}

type Recorder struct {
	mu  sync.Mutex
	out io.Writer
}

// NewRecorder returns a Recorder writing structured lines to w.
func NewRecorder(w io.Writer) *Recorder {
	return &Recorder{out: w}
}

// NewStderrRecorder returns a Recorder writing to os.Stderr, the default
// for the HTTP façade and CLI bootstrap.
func NewStderrRecorder() *Recorder {
	return NewRecorder(os.Stderr)
}

func (r *Recorder) RecordFetch(fetchURL string, httpStatus int, duration time.Duration, contentType string, crawlDepth int) {
	r.writeLine("fetch", []Attribute{
		NewAttr(AttrURL, fetchURL),
		NewAttr(AttrHTTPStatus, fmt.Sprintf("%d", httpStatus)),
		NewAttr(AttrDepth, fmt.Sprintf("%d", crawlDepth)),
		NewAttr("duration_ms", fmt.Sprintf("%d", duration.Milliseconds())),
		NewAttr("content_type", contentType),
	})
}

func (r *Recorder) RecordError(observedAt time.Time, packageName, action string, cause ErrorCause, errorString string, attrs []Attribute) {
	base := []Attribute{
		NewAttr(AttrTime, observedAt.Format(time.RFC3339)),
		NewAttr("package", packageName),
		NewAttr("action", action),
		NewAttr("cause", cause.String()),
		NewAttr("error", errorString),
	}
	r.writeLine("error", append(base, attrs...))
}

func (r *Recorder) RecordArtifact(kind ArtifactKind, path string, attrs []Attribute) {
	base := []Attribute{
		NewAttr("kind", string(kind)),
		NewAttr(AttrWritePath, path),
	}
	r.writeLine("artifact", append(base, attrs...))
}

func (r *Recorder) RecordCrawlStats(stats CrawlStats) {
	r.writeLine("crawl_stats", []Attribute{
		NewAttr(AttrFingerprint, stats.Fingerprint),
		NewAttr("total_pages", fmt.Sprintf("%d", stats.TotalPages)),
		NewAttr("total_errors", fmt.Sprintf("%d", stats.TotalErrors)),
		NewAttr("duration_ms", fmt.Sprintf("%d", stats.DurationMs)),
	})
}

func (r *Recorder) writeLine(event string, attrs []Attribute) {
	var b strings.Builder
	b.WriteString("event=")
	b.WriteString(event)
	for _, a := range attrs {
		if a.Value == "" {
			continue
		}
		b.WriteByte(' ')
		b.WriteString(string(a.Key))
		b.WriteByte('=')
		b.WriteString(a.Value)
	}
	b.WriteByte('\n')

	r.mu.Lock()
	defer r.mu.Unlock()
	io.WriteString(r.out, b.String())
}

var _ Sink = (*Recorder)(nil)
