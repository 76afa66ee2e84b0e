// Package source defines where treatment plans come from. The review core
// treats the source as an external collaborator: it only requires an ordered
// list of treatments and the patient they concern.
package source

import (
	"context"

	"github.com/carelane/medreview/model/review"
)

// Service supplies the items of one review run.
type Service interface {
	// Plan returns the patient and the ordered treatments to review.
	Plan(ctx context.Context) (*review.Patient, []*review.Treatment, error)
}
