package confirm

import (
	"time"
)

// Event envelope published on the relay queue for every registry transition.
type Event struct {
	Topic   string            // see topic constants below
	Data    interface{}       // *Request | *Response
	Headers map[string]string `json:"headers,omitempty"` // optional – tenant, correlation-id etc.
}

// Standard event topics.
const (
	TopicRequestCreated   = "request.created"
	TopicRequestResolved  = "request.resolved"
	TopicRequestExpired   = "request.expired"
	TopicRequestCancelled = "request.cancelled"
)

// Request represents a pending ask for human confirmation. Token is the
// correlation key proper – globally unique per request – while Responder
// names the human whose answer is solicited. The registry allows at most one
// outstanding request per responder, so an answer addressed by responder name
// always maps to exactly one token.
type Request struct {
	Token       string    `json:"token"`
	Responder   string    `json:"responder"`
	TreatmentID string    `json:"treatmentId"`
	Prompt      string    `json:"prompt"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Response carries a raw human answer back into the registry. The core never
// interprets Text beyond the decision engine's affirmative-token match.
type Response struct {
	Responder  string    `json:"responder"`
	Text       string    `json:"text"`
	ReceivedAt time.Time `json:"receivedAt"`
}
