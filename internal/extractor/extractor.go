package extractor

import (
	"bytes"
	"net/url"

	"github.com/PuerkitoBio/goquery"
	"github.com/markopoloparadox/web-crawler/internal/normalize"
)

/*
Responsibilities

- Parse an HTML document
- Enumerate every a[href] element in document order
- Normalize each href against the base URL it is given (the Engine
  passes the crawl's base URL, not the current page's URL)

The extractor never fetches and never filters by visited state; that
belongs to Frontier State. Duplicates within a page are passed through
unchanged.
*/

type LinkExtractor struct{}

func NewLinkExtractor() LinkExtractor {
	return LinkExtractor{}
}

// Extract parses body and returns every normalized, accepted link found
// under a[href], in document order. The HTML parser is lenient, so
// malformed markup is parsed as far as it goes; a body that cannot be
// read yields an empty slice rather than an error: extraction failure
// must never fail a crawl, it only means zero links were discovered.
func (LinkExtractor) Extract(base url.URL, body []byte) []url.URL {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil
	}

	var links []url.URL
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, ok := sel.Attr("href")
		if !ok {
			return
		}
		result := normalize.Normalize(base, href)
		if result.OK() {
			links = append(links, result.URL())
		}
	})

	return links
}
