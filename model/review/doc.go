// Package review defines the treatment review domain model: treatments under
// consideration, the patient they concern, ordered risk levels and the
// approval record that captures each treatment's terminal outcome.
package review
