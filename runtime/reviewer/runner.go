package reviewer

import (
	"context"
	"errors"
	"log"

	"github.com/carelane/medreview/internal/clock"
	"github.com/carelane/medreview/internal/idgen"
	"github.com/carelane/medreview/model/review"
	"github.com/carelane/medreview/progress"
	"github.com/carelane/medreview/service/audit"
	"github.com/carelane/medreview/service/decision"
	"github.com/carelane/medreview/tracing"
)

// Runner sequences treatments through the decision engine one at a time.
// All run-scoped state lives on the runner and the ctx passed to Run; there
// is no ambient global.
type Runner struct {
	engine  *decision.Engine
	trail   *audit.Trail
	tracker *progress.Progress
}

// Option customises the runner.
type Option func(*Runner)

// WithTrail attaches an audit trail recording every decision.
func WithTrail(trail *audit.Trail) Option {
	return func(r *Runner) { r.trail = trail }
}

// WithProgress attaches a progress tracker updated per treatment.
func WithProgress(tracker *progress.Progress) Option {
	return func(r *Runner) { r.tracker = tracker }
}

// New creates a runner bound to a decision engine.
func New(engine *decision.Engine, options ...Option) *Runner {
	ret := &Runner{engine: engine}
	for _, option := range options {
		option(ret)
	}
	if ret.trail == nil {
		ret.trail = audit.New()
	}
	return ret
}

// Trail exposes the decision trail accumulated by this runner.
func (r *Runner) Trail() *audit.Trail {
	return r.trail
}

// Run processes treatments strictly in input order. A rejection or timeout on
// one treatment never aborts the run; only cancellation of ctx does, and even
// then every remaining treatment is recorded with a determinate undecided
// outcome before Run returns ctx.Err().
func (r *Runner) Run(ctx context.Context, treatments []*review.Treatment, responder string) (*Report, error) {
	report := &Report{
		RunID:     idgen.New(),
		Responder: responder,
		StartedAt: clock.Now(),
	}
	if r.tracker != nil {
		r.tracker.RunID = report.RunID
		r.tracker.Responder = responder
		r.tracker.StartedAt = report.StartedAt
		r.tracker.Update(progress.Delta{Total: len(treatments), Pending: len(treatments)})
	}

	var cancelled bool
	for _, treatment := range treatments {
		var outcome *Outcome
		if cancelled {
			outcome = &Outcome{Treatment: treatment, Status: StatusUndecided, Err: decision.ErrDecisionCancelled}
		} else {
			spanCtx, span := tracing.StartSpan(ctx, "review.treatment", "INTERNAL")
			err := r.engine.Decide(spanCtx, treatment, responder)
			tracing.EndSpan(span.WithAttributes(map[string]string{
				"treatment.id":   treatment.ID,
				"treatment.risk": string(treatment.RiskLevel),
			}), err)

			outcome = r.classify(treatment, err)
			if errors.Is(err, decision.ErrDecisionCancelled) {
				cancelled = true
			}
		}
		report.Outcomes = append(report.Outcomes, outcome)
		r.record(ctx, outcome)
	}

	report.CompletedAt = clock.Now()
	if cancelled {
		return report, ctx.Err()
	}
	return report, nil
}

func (r *Runner) classify(treatment *review.Treatment, err error) *Outcome {
	outcome := &Outcome{Treatment: treatment, Err: err}
	switch {
	case err == nil && treatment.Approval.Approved:
		outcome.Status = StatusApproved
	case err == nil:
		outcome.Status = StatusRejected
	default:
		outcome.Status = StatusUndecided
		log.Printf("reviewer: treatment %s undecided: %v", treatment.ID, err)
	}
	return outcome
}

func (r *Runner) record(ctx context.Context, outcome *Outcome) {
	treatment := outcome.Treatment
	entry := &audit.Entry{
		TreatmentID: treatment.ID,
		Treatment:   treatment.Name,
	}
	switch outcome.Status {
	case StatusApproved:
		entry.Actor = *treatment.Approval.ApprovedBy
		if entry.Actor == review.SystemActor {
			entry.Kind = audit.KindAutoApproved
		} else {
			entry.Kind = audit.KindHumanApproved
		}
		entry.RecordedAt = *treatment.Approval.ApprovedAt
	case StatusRejected:
		entry.Kind = audit.KindRejected
	default:
		switch {
		case errors.Is(outcome.Err, decision.ErrDecisionTimeout):
			entry.Kind = audit.KindTimeout
		case errors.Is(outcome.Err, decision.ErrDecisionCancelled):
			entry.Kind = audit.KindCancelled
		default:
			entry.Kind = audit.KindError
		}
		entry.Reason = outcome.Err.Error()
	}
	if err := r.trail.Record(ctx, entry); err != nil {
		log.Printf("reviewer: failed to record audit entry for %s: %v", treatment.ID, err)
	}

	if r.tracker == nil {
		return
	}
	delta := progress.Delta{Pending: -1}
	switch outcome.Status {
	case StatusApproved:
		if entry.Kind == audit.KindAutoApproved {
			delta.AutoApproved = 1
		} else {
			delta.Approved = 1
		}
	case StatusRejected:
		delta.Rejected = 1
	default:
		delta.Undecided = 1
	}
	r.tracker.Update(delta)
}
