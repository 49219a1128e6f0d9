package fetcher

import (
	"net/url"
	"time"
)

// HTTP boundary

type FetchParam struct {
	fetchURL  url.URL
	userAgent string
}

func NewFetchParam(fetchURL url.URL, userAgent string) FetchParam {
	return FetchParam{
		fetchURL:  fetchURL,
		userAgent: userAgent,
	}
}

type FetchResult struct {
	url         url.URL
	body        []byte
	statusCode  int
	contentType string
	fetchedAt   time.Time
}

func (f *FetchResult) URL() url.URL {
	return f.url
}

func (f *FetchResult) Body() []byte {
	return f.body
}

func (f *FetchResult) Code() int {
	return f.statusCode
}

func (f *FetchResult) ContentType() string {
	return f.contentType
}

func (f *FetchResult) FetchedAt() time.Time {
	return f.fetchedAt
}

// NewFetchResultForTest creates a FetchResult for testing purposes, so
// test packages can construct values without accessing unexported
// fields directly.
func NewFetchResultForTest(url url.URL, body []byte, statusCode int, contentType string, fetchedAt time.Time) FetchResult {
	return FetchResult{
		url:         url,
		body:        body,
		statusCode:  statusCode,
		contentType: contentType,
		fetchedAt:   fetchedAt,
	}
}
