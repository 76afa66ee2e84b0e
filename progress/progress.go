// Package progress provides a lightweight tracker that keeps aggregated
// review counters (treatments total, approved, rejected, …) for a single
// run. Components update the counters atomically via the Delta helper; no
// global registry is involved.
package progress

import (
	"sync"
	"time"
)

// Delta represents an incremental counter change emitted by the run driver.
// The fields are signed and therefore can be either positive (increment) or
// negative (decrement).
type Delta struct {
	Total        int
	AutoApproved int
	Approved     int
	Rejected     int
	Undecided    int
	Pending      int
}

// Progress keeps aggregated counters for one review run. It is safe for
// concurrent use.
type Progress struct {
	// Identification, informative only, filled when the run starts.
	RunID     string
	Responder string
	StartedAt time.Time

	// Counters, modified via Update().
	Total        int
	AutoApproved int
	Approved     int
	Rejected     int
	Undecided    int
	Pending      int

	sync.Mutex
	onChange func(Progress)
}

// OnChange registers a callback invoked with a copy of the tracker after
// every update.
func (p *Progress) OnChange(fn func(Progress)) {
	p.Lock()
	p.onChange = fn
	p.Unlock()
}

// Update applies the supplied delta. If an onChange callback has been
// registered it is invoked with a snapshot outside the critical section so
// slow consumers (JSON encoding, I/O) never block the run.
func (p *Progress) Update(d Delta) {
	if p == nil {
		return
	}
	p.Lock()
	p.Total += d.Total
	p.AutoApproved += d.AutoApproved
	p.Approved += d.Approved
	p.Rejected += d.Rejected
	p.Undecided += d.Undecided
	p.Pending += d.Pending

	snapshot := *p
	cb := p.onChange
	p.Unlock()

	if cb != nil {
		cb(snapshot)
	}
}

// Snapshot returns a copy of the tracker suitable for read-only inspection.
func (p *Progress) Snapshot() Progress {
	if p == nil {
		return Progress{}
	}
	p.Lock()
	snapshot := *p
	p.Unlock()
	return snapshot
}
