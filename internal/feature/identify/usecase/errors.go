package usecase

import (
	"errors"
	"fmt"
)

var (
	// ErrNoImage is returned when the request carries no image data.
	ErrNoImage = errors.New("no image provided")

	// ErrNotConfigured is returned when the identification service credential
	// is missing. The check happens before any network call.
	ErrNotConfigured = errors.New("identification service is not configured")

	// ErrNoMatches is returned when the upstream succeeded but its results
	// array is empty or absent.
	ErrNoMatches = errors.New("no plant matches found")

	// ErrNetwork wraps transport failures (DNS, connection refused, timeout)
	// reaching the upstream.
	ErrNetwork = errors.New("network error")
)

// UpstreamError carries a non-200 upstream status and the human-readable
// message extracted from its body.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream returned http %d: %s", e.StatusCode, e.Message)
}
