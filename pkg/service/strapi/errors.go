package strapi

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for the content API client. Callers match them with
// errors.Is.
var (
	// ErrNotFound means the backend reported that the record does not
	// exist. It is recoverable and distinct from other request failures.
	ErrNotFound = goerr.New("record not found")

	// ErrRequestFailed covers transport errors and any non-success status
	// other than 404. The response body is attached for diagnostics.
	// Calls are never retried.
	ErrRequestFailed = goerr.New("content API request failed")

	// ErrDecode means no known envelope shape matched the response body.
	// Create/update callers fall back to the previously-known record.
	ErrDecode = goerr.New("unrecognized response envelope")
)

// Context keys for error values
const (
	KindKey   = "kind"
	RecordKey = "record_id"
	StatusKey = "status"
	BodyKey   = "body"
)
