package viewport

import (
	"sort"
	"sync"
)

// Source publishes viewport events to subscribers.
// Components subscribe on mount and invoke the returned cancel func on
// teardown; a canceled subscriber is guaranteed to receive no further
// callbacks, including during a delivery already in progress.
type Source struct {
	mu     sync.Mutex
	subs   map[uint64]func(Event)
	nextID uint64
}

// NewSource creates an empty event source
func NewSource() *Source {
	return &Source{
		subs: make(map[uint64]func(Event)),
	}
}

// Subscribe registers a callback and returns its cancel func.
// Cancel is idempotent.
func (s *Source) Subscribe(fn func(Event)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// Publish delivers the event to all live subscribers in subscription order.
// Liveness is re-checked per subscriber so a callback may cancel itself or
// others mid-delivery.
func (s *Source) Publish(ev Event) {
	s.mu.Lock()
	ids := make([]uint64, 0, len(s.subs))
	for id := range s.subs {
		ids = append(ids, id)
	}
	s.mu.Unlock()
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		s.mu.Lock()
		fn, ok := s.subs[id]
		s.mu.Unlock()
		if ok {
			fn(ev)
		}
	}
}

// Len returns the current number of live subscribers.
// Used by tests to assert that teardown leaves no subscription behind.
func (s *Source) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}
