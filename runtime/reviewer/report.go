package reviewer

import (
	"time"

	"github.com/carelane/medreview/model/review"
)

// Status is a treatment's terminal state for the run.
type Status string

const (
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusUndecided Status = "undecided"
)

// Outcome couples a treatment with its terminal state. Err preserves the
// distinct failure kind (timeout vs. cancellation vs. collaborator error) for
// logging even though the minimal report only distinguishes approved from
// not approved.
type Outcome struct {
	Treatment *review.Treatment
	Status    Status
	Err       error
}

// Report is the ordered result of one review run.
type Report struct {
	RunID       string
	Responder   string
	StartedAt   time.Time
	CompletedAt time.Time
	Outcomes    []*Outcome
}

// Line is one row of the minimal report shape.
type Line struct {
	TreatmentID string     `json:"treatmentId"`
	Name        string     `json:"name"`
	Approved    bool       `json:"approved"`
	ApprovedBy  *string    `json:"approvedBy,omitempty"`
	ApprovedAt  *time.Time `json:"approvedAt,omitempty"`
}

// Lines flattens the report into its external shape, preserving input order.
func (r *Report) Lines() []Line {
	lines := make([]Line, 0, len(r.Outcomes))
	for _, outcome := range r.Outcomes {
		approval := outcome.Treatment.Approval
		lines = append(lines, Line{
			TreatmentID: outcome.Treatment.ID,
			Name:        outcome.Treatment.Name,
			Approved:    approval.Approved,
			ApprovedBy:  approval.ApprovedBy,
			ApprovedAt:  approval.ApprovedAt,
		})
	}
	return lines
}
