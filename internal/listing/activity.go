package listing

import (
	"sync"
	"time"
)

// Entry is one human-readable activity line.
type Entry struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// Recorder is an append-only, process-local activity log.
type Recorder struct {
	mu      sync.RWMutex
	entries []Entry
	now     func() time.Time
}

// NewRecorder returns an empty recorder. A nil clock defaults to time.Now.
func NewRecorder(now func() time.Time) *Recorder {
	if now == nil {
		now = time.Now
	}
	return &Recorder{now: now}
}

// Record appends message stamped with the current time.
func (r *Recorder) Record(message string) Entry {
	e := Entry{Message: message, Timestamp: r.now()}
	r.mu.Lock()
	r.entries = append(r.entries, e)
	r.mu.Unlock()
	return e
}

// Entries returns a copy of the log in append order.
func (r *Recorder) Entries() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

func (r *Recorder) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
