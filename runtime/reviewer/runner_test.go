package reviewer_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/carelane/medreview/model/review"
	"github.com/carelane/medreview/progress"
	"github.com/carelane/medreview/runtime/reviewer"
	"github.com/carelane/medreview/service/audit"
	"github.com/carelane/medreview/service/confirm"
	regmem "github.com/carelane/medreview/service/confirm/memory"
	"github.com/carelane/medreview/service/decision"
	"github.com/carelane/medreview/service/relay"
)

type fixture struct {
	registry confirm.Registry
	relay    *relay.Service
	runner   *reviewer.Runner
	tracker  *progress.Progress
}

func newFixture(t *testing.T, timeout time.Duration, options ...reviewer.Option) *fixture {
	registry := regmem.New()
	svc := relay.New(registry)
	engine, err := decision.New(registry, svc, decision.WithTimeout(timeout))
	assert.NoError(t, err)
	tracker := &progress.Progress{}
	options = append(options, reviewer.WithProgress(tracker))
	return &fixture{
		registry: registry,
		relay:    svc,
		runner:   reviewer.New(engine, options...),
		tracker:  tracker,
	}
}

func plan(levels ...review.RiskLevel) []*review.Treatment {
	names := map[review.RiskLevel]string{
		review.RiskLow:      "Metformin 500mg",
		review.RiskMedium:   "Physical Therapy",
		review.RiskHigh:     "Coronary Angioplasty",
		review.RiskCritical: "Open Heart Surgery",
	}
	out := make([]*review.Treatment, 0, len(levels))
	for i, level := range levels {
		out = append(out, &review.Treatment{
			ID:        "TRT-00" + string(rune('1'+i)),
			Name:      names[level],
			RiskLevel: level,
		})
	}
	return out
}

// Scenario A: low + high, responder answers yes – both approved, first by the
// system, second by the responder.
func TestRunLowAndHighApproved(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, time.Second)

	stop := relay.AutoConfirm(ctx, f.relay)
	defer stop()

	report, err := f.runner.Run(ctx, plan(review.RiskLow, review.RiskHigh), "Dr. Smith")
	assert.NoError(t, err)

	lines := report.Lines()
	if assert.Len(t, lines, 2) {
		assert.True(t, lines[0].Approved)
		assert.Equal(t, review.SystemActor, *lines[0].ApprovedBy)
		assert.True(t, lines[1].Approved)
		assert.Equal(t, "Dr. Smith", *lines[1].ApprovedBy)
		assert.NotNil(t, lines[1].ApprovedAt)
	}
	assert.Equal(t, 0, f.registry.Pending())

	snapshot := f.tracker.Snapshot()
	assert.Equal(t, 2, snapshot.Total)
	assert.Equal(t, 1, snapshot.AutoApproved)
	assert.Equal(t, 1, snapshot.Approved)
	assert.Equal(t, 0, snapshot.Pending)
}

// Scenario B: one critical treatment, responder answers no – not approved,
// attribution unset.
func TestRunCriticalRejected(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, time.Second)

	stop := relay.AutoDecline(ctx, f.relay, "no")
	defer stop()

	report, err := f.runner.Run(ctx, plan(review.RiskCritical), "Dr. Smith")
	assert.NoError(t, err)

	lines := report.Lines()
	if assert.Len(t, lines, 1) {
		assert.False(t, lines[0].Approved)
		assert.Nil(t, lines[0].ApprovedBy)
		assert.Nil(t, lines[0].ApprovedAt)
	}
	assert.Equal(t, reviewer.StatusRejected, report.Outcomes[0].Status)

	entries, err := f.runner.Trail().Entries(ctx)
	assert.NoError(t, err)
	if assert.Len(t, entries, 1) {
		assert.Equal(t, audit.KindRejected, entries[0].Kind)
	}
}

// Scenario C: one high treatment, no response before timeout – not approved
// but internally distinguishable as timeout rather than rejection.
func TestRunHighTimesOut(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 30*time.Millisecond)

	report, err := f.runner.Run(ctx, plan(review.RiskHigh), "Dr. Smith")
	assert.NoError(t, err, "a timeout is local to the treatment, not fatal to the run")

	if assert.Len(t, report.Outcomes, 1) {
		outcome := report.Outcomes[0]
		assert.Equal(t, reviewer.StatusUndecided, outcome.Status)
		assert.ErrorIs(t, outcome.Err, decision.ErrDecisionTimeout)
		assert.False(t, outcome.Treatment.Approval.Approved)
	}
	assert.Equal(t, 0, f.registry.Pending())

	entries, err := f.runner.Trail().Entries(ctx)
	assert.NoError(t, err)
	if assert.Len(t, entries, 1) {
		assert.Equal(t, audit.KindTimeout, entries[0].Kind)
	}
	assert.Equal(t, 1, f.tracker.Snapshot().Undecided)
}

// A failure on one treatment does not abort the run; later treatments are
// still decided.
func TestRunContinuesAfterTimeout(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 30*time.Millisecond)

	report, err := f.runner.Run(ctx, plan(review.RiskHigh, review.RiskLow), "Dr. Smith")
	assert.NoError(t, err)

	if assert.Len(t, report.Outcomes, 2) {
		assert.Equal(t, reviewer.StatusUndecided, report.Outcomes[0].Status)
		assert.Equal(t, reviewer.StatusApproved, report.Outcomes[1].Status)
	}
}

func TestRunCancelledMarksRemainingUndecided(t *testing.T) {
	f := newFixture(t, time.Second)
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		// Cancel while the first high-risk confirmation is pending.
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	report, err := f.runner.Run(ctx, plan(review.RiskHigh, review.RiskCritical), "Dr. Smith")
	assert.ErrorIs(t, err, context.Canceled)

	if assert.Len(t, report.Outcomes, 2) {
		for _, outcome := range report.Outcomes {
			assert.Equal(t, reviewer.StatusUndecided, outcome.Status)
			assert.ErrorIs(t, outcome.Err, decision.ErrDecisionCancelled)
		}
	}
	assert.Equal(t, 0, f.registry.Pending(), "no dangling pending entries after cancellation")
}

func TestRunPreservesInputOrder(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, time.Second)

	stop := relay.AutoConfirm(ctx, f.relay)
	defer stop()

	treatments := plan(review.RiskLow, review.RiskHigh, review.RiskLow, review.RiskCritical)
	report, err := f.runner.Run(ctx, treatments, "Dr. Smith")
	assert.NoError(t, err)

	if assert.Len(t, report.Outcomes, len(treatments)) {
		for i, outcome := range report.Outcomes {
			assert.Equal(t, treatments[i].ID, outcome.Treatment.ID)
		}
	}
}
