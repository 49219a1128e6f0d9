package fetcher

import (
	"fmt"

	"github.com/markopoloparadox/web-crawler/internal/metadata"
	"github.com/markopoloparadox/web-crawler/pkg/failure"
)

type FetchErrorCause string

const (
	ErrCauseNetworkFailure FetchErrorCause = "network issues"
	ErrCauseReadBodyFailed FetchErrorCause = "failed to read response body"
	ErrCauseNonOK          FetchErrorCause = "non-200 status"
)

// FetchError is always fatal to the single attempt that produced it.
// The Document Fetcher never retries; every FetchError simply resolves
// to "none" one level up.
type FetchError struct {
	Message string
	Cause   FetchErrorCause
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetcher error: %s: %s", e.Cause, e.Message)
}

func (e *FetchError) Severity() failure.Severity {
	return failure.SeverityFatal
}

// mapFetchErrorToMetadataCause maps fetcher-local error semantics to
// the canonical metadata.ErrorCause table. Observational only.
func mapFetchErrorToMetadataCause(err *FetchError) metadata.ErrorCause {
	switch err.Cause {
	case ErrCauseNetworkFailure:
		return metadata.CauseNetworkFailure
	case ErrCauseNonOK:
		return metadata.CauseNetworkFailure
	default:
		return metadata.CauseUnknown
	}
}
