// Package messaging defines the queue abstraction used to move confirmation
// events between the review engine and presentation layers. Implementations
// live in sub-packages so that the transport can be swapped without touching
// callers.
package messaging
