// Package reviewer drives a review run: it sequences treatments through the
// decision engine strictly in input order, collects per-treatment outcomes
// and materializes the final report and audit trail.
package reviewer
