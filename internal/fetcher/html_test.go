package fetcher_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/markopoloparadox/web-crawler/internal/fetcher"
	"github.com/markopoloparadox/web-crawler/internal/metadata"
)

// capturingSink is a test double for metadata.Sink that records every
// call instead of writing structured log lines.
type capturingSink struct {
	fetchEvents []fetchEvent
	errorEvents []errorEvent
}

type fetchEvent struct {
	fetchURL    string
	httpStatus  int
	contentType string
	crawlDepth  int
}

type errorEvent struct {
	packageName string
	cause       metadata.ErrorCause
}

func (c *capturingSink) RecordFetch(fetchURL string, httpStatus int, _ time.Duration, contentType string, crawlDepth int) {
	c.fetchEvents = append(c.fetchEvents, fetchEvent{fetchURL, httpStatus, contentType, crawlDepth})
}

func (c *capturingSink) RecordError(_ time.Time, packageName, _ string, cause metadata.ErrorCause, _ string, _ []metadata.Attribute) {
	c.errorEvents = append(c.errorEvents, errorEvent{packageName, cause})
}

func (c *capturingSink) RecordArtifact(metadata.ArtifactKind, string, []metadata.Attribute) {}

func (c *capturingSink) RecordCrawlStats(metadata.CrawlStats) {}

func mustParse(t *testing.T, raw string) url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("failed to parse %q: %v", raw, err)
	}
	return *u
}

func TestFetch_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("<html></html>"))
	}))
	defer srv.Close()

	sink := &capturingSink{}
	f := fetcher.NewHtmlFetcher(sink)

	result, ok := f.Fetch(context.Background(), 0, fetcher.NewFetchParam(mustParse(t, srv.URL), "test-agent"))
	if !ok {
		t.Fatal("expected ok=true")
	}
	if string(result.Body()) != "<html></html>" {
		t.Errorf("unexpected body: %s", result.Body())
	}
	if len(sink.fetchEvents) != 1 || sink.fetchEvents[0].httpStatus != 200 {
		t.Errorf("expected one fetch event with status 200, got %v", sink.fetchEvents)
	}
}

func TestFetch_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	sink := &capturingSink{}
	f := fetcher.NewHtmlFetcher(sink)

	_, ok := f.Fetch(context.Background(), 0, fetcher.NewFetchParam(mustParse(t, srv.URL), "test-agent"))
	if ok {
		t.Fatal("expected ok=false for 404")
	}
	if len(sink.errorEvents) != 1 {
		t.Fatalf("expected one error event, got %d", len(sink.errorEvents))
	}
}

func TestFetch_NonHTMLContentTypeStillSucceeds(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	sink := &capturingSink{}
	f := fetcher.NewHtmlFetcher(sink)

	result, ok := f.Fetch(context.Background(), 0, fetcher.NewFetchParam(mustParse(t, srv.URL), "test-agent"))
	if !ok {
		t.Fatal("expected ok=true for any HTTP 200, regardless of content type")
	}
	if string(result.Body()) != `{}` {
		t.Errorf("unexpected body: %s", result.Body())
	}
}

func TestFetch_TransportError(t *testing.T) {
	sink := &capturingSink{}
	f := fetcher.NewHtmlFetcher(sink)

	_, ok := f.Fetch(context.Background(), 0, fetcher.NewFetchParam(mustParse(t, "http://127.0.0.1:1"), "test-agent"))
	if ok {
		t.Fatal("expected ok=false for unreachable host")
	}
	if len(sink.errorEvents) != 1 {
		t.Fatalf("expected one error event, got %d", len(sink.errorEvents))
	}
}

func TestFetch_NeverRetries(t *testing.T) {
	var attempts int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	sink := &capturingSink{}
	f := fetcher.NewHtmlFetcher(sink)

	_, ok := f.Fetch(context.Background(), 0, fetcher.NewFetchParam(mustParse(t, srv.URL), "test-agent"))
	if ok {
		t.Fatal("expected ok=false for 500")
	}
	if attempts != 1 {
		t.Errorf("expected exactly 1 attempt, got %d", attempts)
	}
}
