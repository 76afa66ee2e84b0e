// Package yml loads a treatment plan from a YAML document addressed by URL.
package yml

import (
	"context"
	"fmt"

	"github.com/viant/afs"
	"gopkg.in/yaml.v3"

	"github.com/carelane/medreview/model/review"
	"github.com/carelane/medreview/service/source"
)

// Plan mirrors the YAML document layout.
type Plan struct {
	Patient    *review.Patient     `yaml:"patient"`
	Treatments []*review.Treatment `yaml:"treatments"`
}

type service struct {
	fs  afs.Service
	URL string
}

// Option customises the loader.
type Option func(*service)

// WithFS overrides the file service, e.g. to read from mem:// in tests.
func WithFS(fs afs.Service) Option {
	return func(s *service) { s.fs = fs }
}

// New returns a source reading the plan from the supplied URL on every run.
func New(URL string, options ...Option) source.Service {
	ret := &service{URL: URL}
	for _, option := range options {
		option(ret)
	}
	if ret.fs == nil {
		ret.fs = afs.New()
	}
	return ret
}

func (s *service) Plan(ctx context.Context) (*review.Patient, []*review.Treatment, error) {
	data, err := s.fs.DownloadWithURL(ctx, s.URL)
	if err != nil {
		return nil, nil, fmt.Errorf("source: download %s: %w", s.URL, err)
	}
	plan, err := Parse(data)
	if err != nil {
		return nil, nil, fmt.Errorf("source: parse %s: %w", s.URL, err)
	}
	return plan.Patient, plan.Treatments, nil
}

// Parse decodes and validates a YAML treatment plan.
func Parse(data []byte) (*Plan, error) {
	plan := &Plan{}
	if err := yaml.Unmarshal(data, plan); err != nil {
		return nil, err
	}
	for i, treatment := range plan.Treatments {
		if treatment.ID == "" {
			return nil, fmt.Errorf("treatment[%d]: missing id", i)
		}
		if !treatment.RiskLevel.IsValid() {
			level, err := review.ParseRiskLevel(string(treatment.RiskLevel))
			if err != nil {
				return nil, fmt.Errorf("treatment %s: %w", treatment.ID, err)
			}
			treatment.RiskLevel = level
		}
	}
	return plan, nil
}
