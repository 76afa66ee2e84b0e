package confirm

import "errors"

// Sentinel errors reported by Registry implementations. Callers detect the
// condition via errors.Is rather than string comparison.
var (
	// ErrResponderBusy is returned when a request is issued for a responder
	// that already has an outstanding request. The original pending request
	// is left intact.
	ErrResponderBusy = errors.New("confirm: responder already has a pending request")

	// ErrUnmatchedResponse is returned when a response arrives with no
	// corresponding pending request (stale or late answer).
	ErrUnmatchedResponse = errors.New("confirm: no pending request matches response")

	// ErrTimeout is returned by AwaitResponse when no response arrives within
	// the configured wait duration. The pending entry is evicted.
	ErrTimeout = errors.New("confirm: timed out waiting for response")
)
