package relay

import (
	"context"
	"fmt"
	"log"

	"github.com/carelane/medreview/service/confirm"
	"github.com/carelane/medreview/service/messaging"
	qmem "github.com/carelane/medreview/service/messaging/memory"
)

// Notifier is the outward half of the relay contract: it must deliver the
// prompt before the matching response can be accepted.
type Notifier interface {
	Notify(ctx context.Context, request *confirm.Request) error
}

// Service bridges the registry and an external presentation layer through a
// messaging queue.
type Service struct {
	registry confirm.Registry
	events   messaging.Queue[confirm.Event]
}

// Option customises the relay instance.
type Option func(*Service)

// WithQueue overrides the event queue carrying outbound prompts.
func WithQueue(queue messaging.Queue[confirm.Event]) Option {
	return func(s *Service) { s.events = queue }
}

// New creates a relay bound to the supplied registry.
func New(registry confirm.Registry, options ...Option) *Service {
	ret := &Service{registry: registry}
	for _, option := range options {
		option(ret)
	}
	if ret.events == nil {
		ret.events = qmem.NewQueue[confirm.Event](qmem.DefaultConfig())
	}
	return ret
}

// Notify publishes the confirmation request to the event queue.
func (s *Service) Notify(ctx context.Context, request *confirm.Request) error {
	if request == nil {
		return fmt.Errorf("relay: nil request")
	}
	return s.events.Publish(ctx, &confirm.Event{Topic: confirm.TopicRequestCreated, Data: request})
}

// Submit forwards a raw human answer to the registry. Unmatched responses are
// logged and dropped so that a stale answer never crashes the run; the error
// is still returned so callers can observe the drop.
func (s *Service) Submit(ctx context.Context, responder, text string) error {
	if err := s.registry.Resolve(ctx, responder, text); err != nil {
		log.Printf("relay: dropping response from %s: %v", responder, err)
		return err
	}
	_ = s.events.Publish(ctx, &confirm.Event{
		Topic: confirm.TopicRequestResolved,
		Data:  &confirm.Response{Responder: responder, Text: text},
	})
	return nil
}

// Queue exposes the event queue for presentation layers to consume.
func (s *Service) Queue() messaging.Queue[confirm.Event] {
	return s.events
}

var _ Notifier = (*Service)(nil)
