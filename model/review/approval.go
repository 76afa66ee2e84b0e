package review

import (
	"errors"
	"time"
)

// SystemActor is recorded as the approver when a treatment clears review
// without human involvement.
const SystemActor = "system"

// ErrAlreadyFinalized is returned when a second decision is recorded against
// an approval record within the same review run.
var ErrAlreadyFinalized = errors.New("approval already finalized")

// ApprovalRecord holds the terminal outcome of reviewing one treatment.
// ApprovedBy and ApprovedAt are set if and only if Approved is true; a record
// that was never finalized keeps all fields at their zero values.
type ApprovalRecord struct {
	Approved   bool       `json:"approved" yaml:"approved"`
	ApprovedBy *string    `json:"approvedBy,omitempty" yaml:"approvedBy,omitempty"`
	ApprovedAt *time.Time `json:"approvedAt,omitempty" yaml:"approvedAt,omitempty"`

	finalized bool
}

// Approve finalizes the record as approved by the given actor at the given
// time. It fails if a decision has already been recorded.
func (r *ApprovalRecord) Approve(actor string, at time.Time) error {
	if r.finalized {
		return ErrAlreadyFinalized
	}
	r.Approved = true
	r.ApprovedBy = &actor
	r.ApprovedAt = &at
	r.finalized = true
	return nil
}

// Reject finalizes the record as not approved. Approver attribution stays
// unset so that a rejected record is indistinguishable from its zero value in
// reports, while Finalized still marks it as decided.
func (r *ApprovalRecord) Reject() error {
	if r.finalized {
		return ErrAlreadyFinalized
	}
	r.finalized = true
	return nil
}

// Finalized reports whether a decision has been recorded.
func (r *ApprovalRecord) Finalized() bool {
	return r.finalized
}
