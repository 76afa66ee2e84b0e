package decision

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/carelane/medreview/internal/clock"
	"github.com/carelane/medreview/model/review"
	"github.com/carelane/medreview/service/confirm"
	"github.com/carelane/medreview/service/relay"
	"github.com/carelane/medreview/tracing"
)

// affirmative is the only token accepted as consent. Any other answer,
// including an empty one, is a rejection – ambiguous answers are not
// re-prompted.
const affirmative = "yes"

// DefaultTimeout bounds how long a confirmation may stay unanswered before
// the treatment is recorded as undecided.
const DefaultTimeout = 5 * time.Minute

// Engine decides the approval outcome for a single treatment.
type Engine struct {
	registry confirm.Registry
	notifier relay.Notifier
	policy   RoutingPolicy
	patient  *review.Patient
	timeout  time.Duration
}

// Option customises the engine.
type Option func(*Engine)

// WithPolicy overrides the risk routing policy.
func WithPolicy(policy RoutingPolicy) Option {
	return func(e *Engine) { e.policy = policy }
}

// WithPatient supplies the patient cited in confirmation prompts.
func WithPatient(patient *review.Patient) Option {
	return func(e *Engine) { e.patient = patient }
}

// WithTimeout overrides the confirmation wait duration.
func WithTimeout(timeout time.Duration) Option {
	return func(e *Engine) { e.timeout = timeout }
}

// New creates a decision engine bound to a registry and an outward notifier.
func New(registry confirm.Registry, notifier relay.Notifier, options ...Option) (*Engine, error) {
	ret := &Engine{
		registry: registry,
		notifier: notifier,
		policy:   DefaultPolicy(),
		timeout:  DefaultTimeout,
	}
	for _, option := range options {
		option(ret)
	}
	if err := ret.policy.Validate(); err != nil {
		return nil, err
	}
	return ret, nil
}

// Decide finalizes the treatment's approval record. Low-enough risk is
// approved synchronously on behalf of the system actor; otherwise a
// confirmation request is registered, emitted outward and the call suspends
// until the correlated answer arrives. Timeout and cancellation surface as
// ErrDecisionTimeout / ErrDecisionCancelled with the record left unset.
func (e *Engine) Decide(ctx context.Context, treatment *review.Treatment, responder string) error {
	route, err := e.policy.Route(treatment.RiskLevel)
	if err != nil {
		return err
	}
	if route == RouteAutoApprove {
		return treatment.Approval.Approve(review.SystemActor, clock.Now())
	}

	ctx, span := tracing.StartSpan(ctx, "decision.confirm", "INTERNAL")
	err = e.awaitConfirmation(ctx, treatment, responder)
	tracing.EndSpan(span.WithAttributes(map[string]string{
		"treatment.id":   treatment.ID,
		"treatment.risk": string(treatment.RiskLevel),
		"responder":      responder,
	}), err)
	return err
}

func (e *Engine) awaitConfirmation(ctx context.Context, treatment *review.Treatment, responder string) error {
	request, err := e.registry.Request(ctx, &confirm.Request{
		Responder:   responder,
		TreatmentID: treatment.ID,
		Prompt:      Prompt(treatment, e.patient, responder),
	})
	if err != nil {
		// Duplicate pending request signals a sequencing bug; fatal to this
		// treatment, never silently overwritten.
		return fmt.Errorf("treatment %s: %w", treatment.ID, err)
	}
	if err := e.notifier.Notify(ctx, request); err != nil {
		// The prompt never reached the presentation layer; release the
		// registry slot so the responder is not stuck busy.
		_ = e.registry.Resolve(ctx, responder, "")
		return fmt.Errorf("treatment %s: notify: %w", treatment.ID, err)
	}

	response, err := e.registry.AwaitResponse(ctx, request.Token, e.timeout)
	switch {
	case err == nil:
	case errors.Is(err, confirm.ErrTimeout):
		return fmt.Errorf("treatment %s: %w", treatment.ID, ErrDecisionTimeout)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("treatment %s: %w", treatment.ID, ErrDecisionCancelled)
	default:
		return fmt.Errorf("treatment %s: %w", treatment.ID, err)
	}

	if strings.EqualFold(strings.TrimSpace(response.Text), affirmative) {
		return treatment.Approval.Approve(responder, clock.Now())
	}
	return treatment.Approval.Reject()
}
