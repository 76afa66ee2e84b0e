package medreview

import (
	"fmt"
	"time"
)

// Config is a serialisable representation of the engine configuration. It can
// be populated from JSON, YAML, environment variables, etc. The zero-value is
// not useful on its own – start from DefaultConfig and override.
type Config struct {
	// Responder is the clinician whose confirmation is solicited for risky
	// treatments. An opaque identity used purely for correlation and audit
	// attribution; no authentication is performed.
	Responder string `json:"responder" yaml:"responder"`

	Confirmation ConfirmationConfig `json:"confirmation" yaml:"confirmation"`
	Audit        AuditConfig        `json:"audit" yaml:"audit"`
}

// ConfirmationConfig controls the human confirmation round trip.
type ConfirmationConfig struct {
	// Timeout bounds how long a prompt may stay unanswered before the
	// treatment is recorded as undecided.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// IncludeMedium requires confirmation for medium risk as well. By
	// default only high and critical risk treatments need a human answer.
	IncludeMedium bool `json:"includeMedium" yaml:"includeMedium"`
}

// AuditConfig controls decision trail persistence.
type AuditConfig struct {
	// ExportURL, when set, receives the trail as JSON lines after every run
	// (any scheme the afs service understands: file, mem, s3, gs, …).
	ExportURL string `json:"exportURL,omitempty" yaml:"exportURL,omitempty"`
}

// DefaultConfig returns a Config populated with the package defaults.
func DefaultConfig() *Config {
	return &Config{
		Confirmation: ConfirmationConfig{
			Timeout: 5 * time.Minute,
		},
	}
}

// Validate returns an error describing invalid settings or nil.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	if c.Confirmation.Timeout <= 0 {
		return fmt.Errorf("confirmation.timeout must be > 0")
	}
	return nil
}
