package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/carelane/medreview/internal/clock"
	"github.com/carelane/medreview/internal/idgen"
	"github.com/carelane/medreview/service/confirm"
)

// pending couples a registered request with the signal its waiter parks on.
// The channel is buffered so that Resolve never blocks on delivery.
type pending struct {
	req  *confirm.Request
	done chan *confirm.Response
}

type registry struct {
	mu          sync.Mutex
	byToken     map[string]*pending
	byResponder map[string]*pending
}

// New returns an in-memory confirm.Registry. A single mutex guards table
// mutations; suspension and wake-up run over per-request channels so that
// waiters on distinct responders never block each other.
func New() confirm.Registry {
	return &registry{
		byToken:     make(map[string]*pending),
		byResponder: make(map[string]*pending),
	}
}

func (r *registry) Request(_ context.Context, req *confirm.Request) (*confirm.Request, error) {
	if req == nil || req.Responder == "" {
		return nil, fmt.Errorf("confirm: invalid request")
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, busy := r.byResponder[req.Responder]; busy {
		return nil, fmt.Errorf("responder %s: %w", req.Responder, confirm.ErrResponderBusy)
	}
	if req.Token == "" {
		req.Token = idgen.New()
	}
	if req.CreatedAt.IsZero() {
		req.CreatedAt = clock.Now()
	}
	entry := &pending{req: req, done: make(chan *confirm.Response, 1)}
	r.byToken[req.Token] = entry
	r.byResponder[req.Responder] = entry
	return req, nil
}

func (r *registry) AwaitResponse(ctx context.Context, token string, timeout time.Duration) (*confirm.Response, error) {
	r.mu.Lock()
	entry, ok := r.byToken[token]
	r.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("token %s: %w", token, confirm.ErrUnmatchedResponse)
	}

	var expired <-chan time.Time
	if timeout > 0 {
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		expired = timer.C
	}

	select {
	case response := <-entry.done:
		return response, nil
	case <-expired:
		if response, resolved := r.evict(entry); resolved {
			return response, nil
		}
		return nil, fmt.Errorf("token %s: %w", token, confirm.ErrTimeout)
	case <-ctx.Done():
		if response, resolved := r.evict(entry); resolved {
			return response, nil
		}
		return nil, ctx.Err()
	}
}

// evict removes the entry unless a concurrent Resolve already consumed it, in
// which case the buffered response is drained and returned so that the race
// still releases exactly one waiter with the delivered answer.
func (r *registry) evict(entry *pending) (*confirm.Response, bool) {
	r.mu.Lock()
	_, present := r.byToken[entry.req.Token]
	if present {
		delete(r.byToken, entry.req.Token)
		delete(r.byResponder, entry.req.Responder)
	}
	r.mu.Unlock()
	if present {
		return nil, false
	}
	select {
	case response := <-entry.done:
		return response, true
	default:
		return nil, false
	}
}

func (r *registry) Resolve(_ context.Context, responder, text string) error {
	r.mu.Lock()
	entry, ok := r.byResponder[responder]
	if ok {
		delete(r.byToken, entry.req.Token)
		delete(r.byResponder, responder)
		// Buffered send under the lock: removal and delivery are atomic, so a
		// concurrently expiring waiter always finds the response drained in
		// evict rather than observing a half-resolved entry.
		entry.done <- &confirm.Response{Responder: responder, Text: text, ReceivedAt: clock.Now()}
	}
	r.mu.Unlock()
	if !ok {
		return fmt.Errorf("responder %s: %w", responder, confirm.ErrUnmatchedResponse)
	}
	return nil
}

func (r *registry) Pending() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.byToken)
}

var _ confirm.Registry = (*registry)(nil)
