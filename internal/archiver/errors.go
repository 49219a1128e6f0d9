package archiver

import (
	"fmt"

	"github.com/markopoloparadox/web-crawler/pkg/failure"
)

type ArchiveErrorCause string

const (
	ErrCauseEnsureDirFailed ArchiveErrorCause = "failed to create archive directory"
	ErrCauseWriteFailed     ArchiveErrorCause = "failed to write archived document"
)

// ArchiveError is always fatal to the single write attempt; archiving
// is best-effort, so callers log it and move on.
type ArchiveError struct {
	Message string
	Cause   ArchiveErrorCause
}

func (e *ArchiveError) Error() string {
	return fmt.Sprintf("archiver error: %s: %s", e.Cause, e.Message)
}

func (e *ArchiveError) Severity() failure.Severity {
	return failure.SeverityFatal
}
