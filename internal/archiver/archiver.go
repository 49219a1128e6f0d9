package archiver

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/markopoloparadox/web-crawler/internal/metadata"
	"github.com/markopoloparadox/web-crawler/pkg/fileutil"
)

/*
Responsibilities

- Compute a deterministic, per-domain filesystem path for a page
- Create the directory tree
- Write the raw response body as index.html

Archiving is best-effort: a failure here must never fail a crawl. Every
failure is recorded through the metadata sink and then swallowed.
*/

type Archiver struct {
	root         string
	metadataSink metadata.Sink
}

func NewArchiver(root string, metadataSink metadata.Sink) Archiver {
	return Archiver{root: root, metadataSink: metadataSink}
}

// Archive writes body to <root>/<domain>/<subpath>/index.html, where
// domain is derived from baseURL and subpath from pageURL's path
// relative to baseURL's host. A root or empty path maps directly to
// <root>/<domain>/index.html.
func (a Archiver) Archive(baseURL url.URL, pageURL url.URL, body []byte) {
	domain := baseURL.Host
	subpath := strings.TrimPrefix(pageURL.Path, "/")

	dirPath := filepath.Join(a.root, domain, subpath)
	if err := fileutil.EnsureDir(dirPath); err != nil {
		a.recordFailure("Archive", &ArchiveError{Message: err.Error(), Cause: ErrCauseEnsureDirFailed}, pageURL)
		return
	}

	filePath := filepath.Join(dirPath, "index.html")
	if err := os.WriteFile(filePath, body, 0644); err != nil {
		a.recordFailure("Archive", &ArchiveError{Message: err.Error(), Cause: ErrCauseWriteFailed}, pageURL)
		return
	}

	a.metadataSink.RecordArtifact(metadata.ArtifactArchivedPage, filePath, []metadata.Attribute{
		metadata.NewAttr(metadata.AttrURL, pageURL.String()),
	})
}

func (a Archiver) recordFailure(action string, err *ArchiveError, pageURL url.URL) {
	a.metadataSink.RecordError(
		time.Now(),
		"archiver",
		action,
		metadata.CauseStorageFailure,
		err.Error(),
		[]metadata.Attribute{metadata.NewAttr(metadata.AttrURL, pageURL.String())},
	)
}
