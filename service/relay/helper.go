package relay

import (
	"context"

	"github.com/carelane/medreview/service/confirm"
)

// AnswerFunc produces the raw answer for a pending confirmation request.
type AnswerFunc func(request *confirm.Request) (text string, respond bool)

// AutoResponder starts a goroutine that consumes outbound prompt events and
// applies fn to every confirmation request. Returning respond=false leaves
// the request unanswered (useful to exercise timeouts). It returns stop() –
// call it (or cancel ctx) to exit.
func AutoResponder(ctx context.Context, svc *Service, fn AnswerFunc) (stop func()) {
	ctx, cancel := context.WithCancel(ctx)

	go func() {
		for {
			msg, err := svc.Queue().Consume(ctx)
			if err != nil {
				return
			}
			event := msg.T()
			_ = msg.Ack()
			if event.Topic != confirm.TopicRequestCreated {
				continue
			}
			request, ok := event.Data.(*confirm.Request)
			if !ok {
				continue
			}
			if text, respond := fn(request); respond {
				_ = svc.Submit(ctx, request.Responder, text)
			}
		}
	}()
	return cancel
}

// AutoConfirm answers every confirmation request affirmatively.
func AutoConfirm(ctx context.Context, svc *Service) func() {
	return AutoResponder(ctx, svc, func(*confirm.Request) (string, bool) { return "yes", true })
}

// AutoDecline answers every confirmation request with the given text.
func AutoDecline(ctx context.Context, svc *Service, text string) func() {
	return AutoResponder(ctx, svc, func(*confirm.Request) (string, bool) { return text, true })
}
