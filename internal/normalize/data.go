package normalize

import "net/url"

// Result is the outcome of normalizing one href against a base URL.
type Result struct {
	url url.URL
	ok  bool
}

func accepted(u url.URL) Result {
	return Result{url: u, ok: true}
}

func rejected() Result {
	return Result{ok: false}
}

func (r Result) URL() url.URL {
	return r.url
}

func (r Result) OK() bool {
	return r.ok
}
