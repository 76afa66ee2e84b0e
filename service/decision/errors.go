package decision

import "errors"

var (
	// ErrDecisionTimeout indicates no human answer arrived within the
	// configured wait; the treatment stays undecided, not rejected.
	ErrDecisionTimeout = errors.New("decision: timed out waiting for confirmation")

	// ErrDecisionCancelled indicates the run was cancelled while waiting for
	// a human answer.
	ErrDecisionCancelled = errors.New("decision: cancelled while waiting for confirmation")
)
