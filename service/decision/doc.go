// Package decision routes each treatment either to synchronous auto-approval
// or to a human confirmation round trip, depending on its risk level, and
// derives the approval outcome from the human answer.
package decision
