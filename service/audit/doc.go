// Package audit records the decision trail of a review run: one entry per
// finalized or failed decision, listing who decided, how and when. The trail
// can be exported as JSON lines through the afs abstraction.
package audit
