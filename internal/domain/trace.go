package domain

import (
	"sync"
	"time"
)

// TraceEvent is one entry of the per-session routing trace: a query headed to
// an agent, or the content that came back. Used for observability only, never
// for routing decisions.
type TraceEvent struct {
	Agent    string
	Query    string
	Response *Content
	At       time.Time
}

// TraceSink receives trace events. The sink is caller-owned so the router and
// agents stay stateless and independently testable.
type TraceSink interface {
	Record(event TraceEvent)
}

// MemoryTrace is an append-only in-memory TraceSink scoped to one session.
type MemoryTrace struct {
	mu     sync.Mutex
	events []TraceEvent
}

// NewMemoryTrace creates an empty in-memory trace.
func NewMemoryTrace() *MemoryTrace {
	return &MemoryTrace{}
}

// Record appends an event to the trace.
func (t *MemoryTrace) Record(event TraceEvent) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.events = append(t.events, event)
}

// Events returns a copy of the recorded events in append order.
func (t *MemoryTrace) Events() []TraceEvent {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]TraceEvent, len(t.events))
	copy(out, t.events)
	return out
}

// NopTrace discards all events.
type NopTrace struct{}

// Record implements TraceSink.
func (NopTrace) Record(TraceEvent) {}
