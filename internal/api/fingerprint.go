package api

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strconv"
)

// Fingerprint derives the stable 128-bit hex digest a crawl result is
// addressed by. Only (address, maxDepth, maxPages) feed it; robots_txt
// and archive_pages are deliberately excluded so two requests differing
// only in those flags share a result.
func Fingerprint(address string, maxDepth, maxPages *int) string {
	rendering := fmt.Sprintf("address=%s;max_depth=%s;max_pages=%s", address, optionalInt(maxDepth), optionalInt(maxPages))
	sum := md5.Sum([]byte(rendering))
	return hex.EncodeToString(sum[:])
}

// optionalInt renders a *int as "none" when absent and as its decimal
// value otherwise, so a present 0 is never confusable with absent.
func optionalInt(v *int) string {
	if v == nil {
		return "none"
	}
	return strconv.Itoa(*v)
}
