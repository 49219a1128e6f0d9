package normalize

import (
	"net/url"
	"strings"
)

/*
Normalize maps a raw href relative to a base URL into a canonical
absolute, same-host URL, or rejects it. Rules are evaluated in order
and the first match wins:

 1. href parses as an absolute URL and its host equals the base host:
    returned verbatim.
 2. href begins with "/": returned as base + href.
 3. href ends with ".html" (case-sensitive): returned as base + "/" + href.
 4. otherwise: rejected.

Fragments and query strings are preserved as-is. Protocol-relative
hrefs ("//host/...") and "." / ".." resolution are deliberately not
performed; two URLs differing only by that resolution are treated as
distinct. This asymmetry is load-bearing for Frontier State dedup and
must not be "fixed".
*/
func Normalize(base url.URL, href string) Result {
	if parsed, err := url.Parse(href); err == nil && parsed.IsAbs() {
		if parsed.Host == base.Host {
			return accepted(*parsed)
		}
		return rejected()
	}

	baseStr := base.String()
	switch {
	case strings.HasPrefix(href, "/"):
		return parseJoined(baseStr + href)
	case strings.HasSuffix(href, ".html"):
		return parseJoined(baseStr + "/" + href)
	default:
		return rejected()
	}
}

func parseJoined(raw string) Result {
	u, err := url.Parse(raw)
	if err != nil {
		return rejected()
	}
	return accepted(*u)
}
