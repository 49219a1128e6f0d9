package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/markopoloparadox/web-crawler/internal/metadata"
)

/*
Responsibilities

- Perform a single HTTP GET
- Apply browser-like headers
- Classify the response
- Return the body on any HTTP 200, regardless of content type

No error is ever retried here. A failed attempt is recorded through
the metadata sink and resolves to ok=false one level up; it is never
propagated as a crawl-ending error.
*/

type HtmlFetcher struct {
	metadataSink metadata.Sink
	httpClient   *http.Client
}

func NewHtmlFetcher(metadataSink metadata.Sink) HtmlFetcher {
	return HtmlFetcher{
		metadataSink: metadataSink,
		httpClient:   &http.Client{},
	}
}

func (h *HtmlFetcher) Init(httpClient *http.Client) {
	h.httpClient = httpClient
}

func (h *HtmlFetcher) Fetch(ctx context.Context, crawlDepth int, param FetchParam) (FetchResult, bool) {
	const callerMethod = "HtmlFetcher.Fetch"
	startTime := time.Now()

	result, err := h.performFetch(ctx, param.fetchURL, param.userAgent)

	duration := time.Since(startTime)

	var statusCode int
	var contentType string
	if err == nil {
		statusCode = result.Code()
		contentType = result.ContentType()
	}

	h.metadataSink.RecordFetch(param.fetchURL.String(), statusCode, duration, contentType, crawlDepth)

	if err != nil {
		h.metadataSink.RecordError(
			time.Now(),
			"fetcher",
			callerMethod,
			mapFetchErrorToMetadataCause(err),
			err.Error(),
			[]metadata.Attribute{metadata.NewAttr(metadata.AttrURL, param.fetchURL.String())},
		)
		return FetchResult{}, false
	}

	return result, true
}

func (h *HtmlFetcher) performFetch(ctx context.Context, fetchURL url.URL, userAgent string) (FetchResult, *FetchError) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fetchURL.String(), nil)
	if err != nil {
		return FetchResult{}, &FetchError{Message: err.Error(), Cause: ErrCauseNetworkFailure}
	}

	for key, value := range requestHeaders(userAgent) {
		req.Header.Set(key, value)
	}

	resp, err := h.httpClient.Do(req)
	if err != nil {
		return FetchResult{}, &FetchError{Message: err.Error(), Cause: ErrCauseNetworkFailure}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return FetchResult{}, &FetchError{
			Message: fmt.Sprintf("status %d", resp.StatusCode),
			Cause:   ErrCauseNonOK,
		}
	}

	contentType := resp.Header.Get("Content-Type")

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return FetchResult{}, &FetchError{Message: err.Error(), Cause: ErrCauseReadBodyFailed}
	}

	return FetchResult{
		url:         fetchURL,
		body:        body,
		statusCode:  resp.StatusCode,
		contentType: contentType,
		fetchedAt:   time.Now(),
	}, nil
}

func requestHeaders(userAgent string) map[string]string {
	return map[string]string{
		"User-Agent":      userAgent,
		"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
		"Accept-Language": "en-US,en;q=0.5",
		"Connection":      "keep-alive",
	}
}
