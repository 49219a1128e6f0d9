package fetcher

import (
	"context"
	"net/http"
)

type Fetcher interface {
	Init(httpClient *http.Client)
	Fetch(ctx context.Context, crawlDepth int, param FetchParam) (FetchResult, bool)
}
