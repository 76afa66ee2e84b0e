// Package medreview wires the treatment review engine together: a pending
// confirmation registry, a decision engine routing treatments by risk level,
// an event relay towards the presentation layer and a run driver producing
// the final report and audit trail.
//
// Low and medium risk treatments are approved automatically on behalf of the
// system actor; high and critical risk treatments suspend the run until the
// responsible clinician answers the emitted confirmation prompt.
package medreview
