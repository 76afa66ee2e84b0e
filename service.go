package medreview

import (
	"context"
	"fmt"
	"log"

	"github.com/carelane/medreview/model/review"
	"github.com/carelane/medreview/progress"
	"github.com/carelane/medreview/runtime/reviewer"
	"github.com/carelane/medreview/service/audit"
	"github.com/carelane/medreview/service/confirm"
	regmem "github.com/carelane/medreview/service/confirm/memory"
	"github.com/carelane/medreview/service/decision"
	"github.com/carelane/medreview/service/messaging"
	"github.com/carelane/medreview/service/relay"
	"github.com/carelane/medreview/service/source"
	smock "github.com/carelane/medreview/service/source/mock"
)

// Service is the assembled review engine. All run state is scoped to the
// service and the context passed into Review; nothing ambient.
type Service struct {
	config   *Config
	registry confirm.Registry
	queue    messaging.Queue[confirm.Event]
	relay    *relay.Service
	source   source.Service
	trail    *audit.Trail
	tracker  *progress.Progress
}

// New assembles a review service. Options override individual collaborators;
// unset ones fall back to in-memory defaults.
func New(options ...Option) (*Service, error) {
	ret := &Service{}
	for _, option := range options {
		option(ret)
	}
	if ret.config == nil {
		ret.config = DefaultConfig()
	}
	if err := ret.config.Validate(); err != nil {
		return nil, fmt.Errorf("medreview: invalid config: %w", err)
	}
	if ret.registry == nil {
		ret.registry = regmem.New()
	}
	relayOptions := []relay.Option(nil)
	if ret.queue != nil {
		relayOptions = append(relayOptions, relay.WithQueue(ret.queue))
	}
	ret.relay = relay.New(ret.registry, relayOptions...)
	if ret.queue == nil {
		ret.queue = ret.relay.Queue()
	}
	if ret.source == nil {
		ret.source = smock.New()
	}
	ret.trail = audit.New()
	ret.tracker = &progress.Progress{}
	return ret, nil
}

// Review executes one full review run: it pulls the treatment plan from the
// source, decides every treatment in order and returns the ordered report.
func (s *Service) Review(ctx context.Context) (*reviewer.Report, error) {
	if s.config.Responder == "" {
		return nil, fmt.Errorf("medreview: responder not configured")
	}
	patient, treatments, err := s.source.Plan(ctx)
	if err != nil {
		return nil, fmt.Errorf("medreview: load plan: %w", err)
	}

	threshold := review.RiskHigh
	if s.config.Confirmation.IncludeMedium {
		threshold = review.RiskMedium
	}
	engine, err := decision.New(s.registry, s.relay,
		decision.WithPatient(patient),
		decision.WithTimeout(s.config.Confirmation.Timeout),
		decision.WithPolicy(decision.PolicyFromThreshold(threshold)))
	if err != nil {
		return nil, err
	}

	runner := reviewer.New(engine,
		reviewer.WithTrail(s.trail),
		reviewer.WithProgress(s.tracker))
	report, runErr := runner.Run(ctx, treatments, s.config.Responder)

	if URL := s.config.Audit.ExportURL; URL != "" && report != nil {
		if err := s.trail.Export(ctx, URL); err != nil {
			log.Printf("medreview: audit export to %s failed: %v", URL, err)
		}
	}
	return report, runErr
}

// Relay exposes the event relay so presentation layers can consume prompts
// and submit answers.
func (s *Service) Relay() *relay.Service {
	return s.relay
}

// Registry exposes the pending-request registry.
func (s *Service) Registry() confirm.Registry {
	return s.registry
}

// Trail exposes the decision trail accumulated across runs.
func (s *Service) Trail() *audit.Trail {
	return s.trail
}

// Progress exposes the run progress tracker.
func (s *Service) Progress() *progress.Progress {
	return s.tracker
}
