package metadata

import (
	"time"
)

// FetchEvent is a point-in-time record of one fetch attempt.
type FetchEvent struct {
	fetchUrl    string
	httpStatus  int
	duration    time.Duration
	contentType string
	crawlDepth  int
}

/*
CrawlStats is a terminal, derived summary of one completed crawl.
  - Contains only aggregate counts and durations.
  - Computed by the HTTP façade from the Engine's result.
  - Recorded exactly once per crawl run, after Engine.Run returns.
  - Must not influence scheduling or crawl termination.
*/
type CrawlStats struct {
	Fingerprint string
	TotalPages  int
	TotalErrors int
	DurationMs  int64
}

// ArtifactRecord describes one side-effecting write (an archived page).
type ArtifactRecord struct {
	Kind ArtifactKind
	Path string
}

type ArtifactKind string

const (
	ArtifactArchivedPage ArtifactKind = "archived_page"
)

/*
ErrorCause is a closed, canonical classification used exclusively for
observability (logging, metrics, reporting).

Rules:
  - ErrorCause is for observability only.
  - It must never be used to derive retry, continuation, or abort decisions.
  - Any use of metadata.ErrorCause outside logging, metrics, or reporting is a design violation.
  - ErrorCause MUST NOT influence control flow.
  - ErrorCause values MUST have stable, package-agnostic semantics.
  - Pipeline packages MAY map their local errors to ErrorCause,
    but MUST NOT invent new meanings.

If a failure does not clearly match a defined cause, CauseUnknown MUST be used.
*/
type ErrorCause int

const (
	CauseUnknown ErrorCause = iota
	CauseNetworkFailure
	CausePolicyDisallow
	CauseContentInvalid
	CauseStorageFailure
	CauseInvariantViolation
)

func (c ErrorCause) String() string {
	switch c {
	case CauseNetworkFailure:
		return "network_failure"
	case CausePolicyDisallow:
		return "policy_disallow"
	case CauseContentInvalid:
		return "content_invalid"
	case CauseStorageFailure:
		return "storage_failure"
	case CauseInvariantViolation:
		return "invariant_violation"
	default:
		return "unknown"
	}
}

type ErrorRecord struct {
	packageName string
	action      string
	cause       ErrorCause
	errorString string
	observedAt  time.Time
	attrs       []Attribute
}

type Attribute struct {
	Key   AttributeKey
	Value string
}

func NewAttr(key AttributeKey, val string) Attribute {
	return Attribute{
		Key:   key,
		Value: val,
	}
}

type AttributeKey string

const (
	AttrTime        AttributeKey = "time"
	AttrURL         AttributeKey = "url"
	AttrHost        AttributeKey = "host"
	AttrPath        AttributeKey = "path"
	AttrDepth       AttributeKey = "depth"
	AttrHTTPStatus  AttributeKey = "http_status"
	AttrWritePath   AttributeKey = "write_path"
	AttrTraceID     AttributeKey = "trace_id"
	AttrFingerprint AttributeKey = "fingerprint"
)
