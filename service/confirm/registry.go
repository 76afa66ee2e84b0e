package confirm

import (
	"context"
	"time"
)

// Registry tracks outstanding confirmation requests and matches them with
// inbound responses. Implementations must support concurrent request/resolve
// across distinct responders; suspension is cooperative – AwaitResponse
// parks on a per-request signal, never a busy poll.
type Registry interface {
	// Request registers a new pending request for req.Responder and assigns
	// it a unique token. It fails with ErrResponderBusy when another request
	// is already pending for the same responder.
	Request(ctx context.Context, req *Request) (*Request, error)

	// AwaitResponse suspends the calling task until a response for token is
	// delivered, the timeout elapses (ErrTimeout) or ctx is cancelled. The
	// pending entry is evicted on every exit path.
	AwaitResponse(ctx context.Context, token string, timeout time.Duration) (*Response, error)

	// Resolve delivers a response addressed by responder name, releasing
	// exactly one AwaitResponse call. It fails with ErrUnmatchedResponse when
	// no request is pending for the responder.
	Resolve(ctx context.Context, responder, text string) error

	// Pending returns the number of outstanding requests.
	Pending() int
}
