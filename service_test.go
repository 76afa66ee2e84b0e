package medreview_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/viant/afs"

	"github.com/carelane/medreview"
	"github.com/carelane/medreview/model/review"
	"github.com/carelane/medreview/service/audit"
	"github.com/carelane/medreview/service/relay"
	"github.com/carelane/medreview/service/source"
)

type staticSource struct {
	patient    *review.Patient
	treatments []*review.Treatment
}

func (s *staticSource) Plan(_ context.Context) (*review.Patient, []*review.Treatment, error) {
	return s.patient, s.treatments, nil
}

var _ source.Service = (*staticSource)(nil)

func testConfig(timeout time.Duration) *medreview.Config {
	config := medreview.DefaultConfig()
	config.Responder = "Dr. Smith"
	config.Confirmation.Timeout = timeout
	return config
}

func TestReviewMockPlanEndToEnd(t *testing.T) {
	ctx := context.Background()
	svc, err := medreview.New(medreview.WithConfig(testConfig(time.Second)))
	assert.NoError(t, err)

	stop := relay.AutoConfirm(ctx, svc.Relay())
	defer stop()

	report, err := svc.Review(ctx)
	assert.NoError(t, err)

	lines := report.Lines()
	if assert.Len(t, lines, 2) {
		// Metformin is low risk: approved by the system without suspension.
		assert.Equal(t, "TRT-001", lines[0].TreatmentID)
		assert.Equal(t, review.SystemActor, *lines[0].ApprovedBy)
		// Angioplasty is high risk: approved by the confirming clinician.
		assert.Equal(t, "TRT-002", lines[1].TreatmentID)
		assert.Equal(t, "Dr. Smith", *lines[1].ApprovedBy)
	}
	assert.Equal(t, 0, svc.Registry().Pending(), "nothing left pending after the run")

	entries, err := svc.Trail().Entries(ctx)
	assert.NoError(t, err)
	if assert.Len(t, entries, 2) {
		assert.Equal(t, audit.KindAutoApproved, entries[0].Kind)
		assert.Equal(t, audit.KindHumanApproved, entries[1].Kind)
	}
}

func TestReviewMediumPolicyIsConfigurable(t *testing.T) {
	ctx := context.Background()
	config := testConfig(time.Second)
	config.Confirmation.IncludeMedium = true

	svc, err := medreview.New(
		medreview.WithConfig(config),
		medreview.WithSource(&staticSource{
			patient: &review.Patient{ID: "P1", Name: "Jane Roe"},
			treatments: []*review.Treatment{
				{ID: "TRT-010", Name: "Physical Therapy", RiskLevel: review.RiskMedium},
			},
		}))
	assert.NoError(t, err)

	stop := relay.AutoDecline(ctx, svc.Relay(), "no")
	defer stop()

	report, err := svc.Review(ctx)
	assert.NoError(t, err)
	if assert.Len(t, report.Lines(), 1) {
		assert.False(t, report.Lines()[0].Approved, "medium risk went through confirmation and was declined")
	}
}

func TestReviewExportsAuditTrail(t *testing.T) {
	ctx := context.Background()
	config := testConfig(time.Second)
	config.Audit.ExportURL = "mem://localhost/medreview/test-trail.jsonl"

	svc, err := medreview.New(medreview.WithConfig(config))
	assert.NoError(t, err)

	stop := relay.AutoConfirm(ctx, svc.Relay())
	defer stop()

	_, err = svc.Review(ctx)
	assert.NoError(t, err)

	ok, _ := afs.New().Exists(ctx, config.Audit.ExportURL)
	assert.True(t, ok, "trail exported after the run")
}

func TestReviewTimeoutLeavesUndecided(t *testing.T) {
	ctx := context.Background()
	svc, err := medreview.New(
		medreview.WithConfig(testConfig(30*time.Millisecond)),
		medreview.WithSource(&staticSource{
			patient: &review.Patient{ID: "P1", Name: "Jane Roe"},
			treatments: []*review.Treatment{
				{ID: "TRT-020", Name: "Spinal Fusion", RiskLevel: review.RiskCritical},
			},
		}))
	assert.NoError(t, err)

	// Nobody consumes prompts: the confirmation must time out.
	report, err := svc.Review(ctx)
	assert.NoError(t, err)
	if assert.Len(t, report.Lines(), 1) {
		assert.False(t, report.Lines()[0].Approved)
	}
	entries, err := svc.Trail().Entries(ctx)
	assert.NoError(t, err)
	if assert.Len(t, entries, 1) {
		assert.Equal(t, audit.KindTimeout, entries[0].Kind)
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	config := medreview.DefaultConfig()
	config.Confirmation.Timeout = 0
	_, err := medreview.New(medreview.WithConfig(config))
	assert.Error(t, err)
}
