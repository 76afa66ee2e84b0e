package audit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/viant/afs"
	"github.com/viant/afs/file"

	"github.com/carelane/medreview/internal/clock"
	"github.com/carelane/medreview/internal/idgen"
	"github.com/carelane/medreview/service/dao"
	"github.com/carelane/medreview/service/dao/store"
)

// Kind classifies how a decision was reached.
type Kind string

const (
	KindAutoApproved  Kind = "auto-approved"
	KindHumanApproved Kind = "human-approved"
	KindRejected      Kind = "rejected"
	KindTimeout       Kind = "timeout"
	KindCancelled     Kind = "cancelled"
	KindError         Kind = "error"
)

// Entry is one line of the decision trail.
type Entry struct {
	ID          string    `json:"id"`
	TreatmentID string    `json:"treatmentId"`
	Treatment   string    `json:"treatment"`
	Kind        Kind      `json:"kind"`
	Actor       string    `json:"actor,omitempty"`
	Reason      string    `json:"reason,omitempty"`
	RecordedAt  time.Time `json:"recordedAt"`
}

func entryKey(e *Entry) string { return e.ID }

// Trail accumulates decision entries for a single review run.
type Trail struct {
	entries dao.Service[string, Entry]
	fs      afs.Service
}

// Option customises the trail.
type Option func(*Trail)

// WithFS overrides the file service used by Export.
func WithFS(fs afs.Service) Option {
	return func(t *Trail) { t.fs = fs }
}

// New creates an empty decision trail.
func New(options ...Option) *Trail {
	ret := &Trail{entries: store.NewMemoryStore[string, Entry](entryKey)}
	for _, option := range options {
		option(ret)
	}
	if ret.fs == nil {
		ret.fs = afs.New()
	}
	return ret
}

// Record appends an entry to the trail, assigning ID and timestamp.
func (t *Trail) Record(ctx context.Context, entry *Entry) error {
	if entry == nil {
		return dao.ErrNilEntity
	}
	if entry.ID == "" {
		entry.ID = idgen.New()
	}
	if entry.RecordedAt.IsZero() {
		entry.RecordedAt = clock.Now()
	}
	return t.entries.Save(ctx, entry)
}

// Entries returns all recorded entries in decision order.
func (t *Trail) Entries(ctx context.Context) ([]*Entry, error) {
	return t.entries.List(ctx)
}

// Export writes the trail as JSON lines to the supplied URL (any scheme the
// afs service understands: file, mem, s3, gs, …).
func (t *Trail) Export(ctx context.Context, URL string) error {
	entries, err := t.entries.List(ctx)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	for _, entry := range entries {
		if err := encoder.Encode(entry); err != nil {
			return fmt.Errorf("audit: encode entry %s: %w", entry.ID, err)
		}
	}
	return t.fs.Upload(ctx, URL, file.DefaultFileOsMode, &buf)
}
