// Package progress provides a single-slot progress observable: a reader
// always sees the latest value, superseded values are dropped rather than
// queued.
package progress

import "sync"

// Slot holds a progress fraction in [0,1]. Values never decrease.
type Slot struct {
	mu        sync.Mutex
	value     float64
	published bool
	closed    bool
	updates   chan float64
}

func NewSlot() *Slot {
	return &Slot{updates: make(chan float64, 1)}
}

// Set publishes f, clamped to [0,1]. It reports false when f would move the
// value backwards, repeats it, or the slot is closed.
func (s *Slot) Set(f float64) bool {
	if f < 0 || f != f {
		f = 0
	}
	if f > 1 {
		f = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return false
	}
	if s.published && f <= s.value {
		return false
	}
	s.value = f
	s.published = true

	select {
	case <-s.updates:
	default:
	}
	s.updates <- f
	return true
}

// Value returns the latest published fraction (0 before the first Set).
func (s *Slot) Value() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

// Updates delivers the most recent unread value. The channel is closed by
// Close; a value pending at that moment is still delivered.
func (s *Slot) Updates() <-chan float64 {
	return s.updates
}

// Close stops the slot. Later Sets are ignored. Safe to call twice.
func (s *Slot) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	close(s.updates)
}
