package decision

import (
	"fmt"

	"github.com/carelane/medreview/model/review"
)

// Route is the action taken for a given risk level.
type Route int

const (
	// RouteAutoApprove clears the treatment without human involvement.
	RouteAutoApprove Route = iota

	// RouteConfirm requires an explicit human confirmation round trip.
	RouteConfirm
)

// RoutingPolicy maps every risk level to a route. The map must be total –
// Validate rejects policies that leave any defined risk level without a
// route, so no level's handling is ever implicit.
type RoutingPolicy map[review.RiskLevel]Route

// DefaultPolicy auto-approves low and medium risk and requires confirmation
// for high and critical risk.
func DefaultPolicy() RoutingPolicy {
	return PolicyFromThreshold(review.RiskHigh)
}

// PolicyFromThreshold builds a total policy that requires confirmation for
// every level at or above threshold.
func PolicyFromThreshold(threshold review.RiskLevel) RoutingPolicy {
	policy := make(RoutingPolicy, len(review.Levels()))
	for _, level := range review.Levels() {
		if level.AtLeast(threshold) {
			policy[level] = RouteConfirm
		} else {
			policy[level] = RouteAutoApprove
		}
	}
	return policy
}

// Validate ensures the policy covers every defined risk level.
func (p RoutingPolicy) Validate() error {
	for _, level := range review.Levels() {
		if _, ok := p[level]; !ok {
			return fmt.Errorf("routing policy has no route for risk level %q", level)
		}
	}
	return nil
}

// Route returns the configured route for level.
func (p RoutingPolicy) Route(level review.RiskLevel) (Route, error) {
	route, ok := p[level]
	if !ok {
		return 0, fmt.Errorf("routing policy has no route for risk level %q", level)
	}
	return route, nil
}
