// Package relay shuttles confirmation requests outward to a presentation
// layer and routes inbound human answers back into the pending-request
// registry. The relay never interprets answer text.
package relay
