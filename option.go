package medreview

import (
	"github.com/carelane/medreview/service/confirm"
	"github.com/carelane/medreview/service/messaging"
	"github.com/carelane/medreview/service/source"
)

// Option customises the review service.
type Option func(*Service)

// WithConfig supplies the engine configuration.
func WithConfig(config *Config) Option {
	return func(s *Service) { s.config = config }
}

// WithSource overrides where treatment plans come from; defaults to the
// built-in mock plan.
func WithSource(src source.Service) Option {
	return func(s *Service) { s.source = src }
}

// WithRegistry overrides the pending-request registry implementation.
func WithRegistry(registry confirm.Registry) Option {
	return func(s *Service) { s.registry = registry }
}

// WithEventQueue overrides the queue carrying confirmation events to the
// presentation layer.
func WithEventQueue(queue messaging.Queue[confirm.Event]) Option {
	return func(s *Service) { s.queue = queue }
}
