// Package confirm implements the human-in-the-loop confirmation layer. It
// allows a treatment review to be paused until an explicit yes/no answer is
// recorded by the responsible clinician.
package confirm
