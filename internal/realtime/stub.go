package realtime

import "sync"

// Stub satisfies Service without a network. It delivers only events
// whose room is subscribed, which is the whole contract the production
// channel must keep as well. Tests and offline runs use it.
type Stub struct {
	mu     sync.Mutex
	subs   map[string]struct{}
	events chan Event
}

func NewStub() *Stub {
	return &Stub{
		subs:   make(map[string]struct{}),
		events: make(chan Event, 16),
	}
}

func (s *Stub) Subscribe(roomID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs[roomID] = struct{}{}
	return nil
}

func (s *Stub) Unsubscribe(roomID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.subs, roomID)
}

func (s *Stub) Events() <-chan Event {
	return s.events
}

func (s *Stub) Close() {}

// Emit simulates a backend event. Events for unsubscribed rooms are
// dropped; a full buffer drops too rather than blocking the emitter.
func (s *Stub) Emit(e Event) {
	s.mu.Lock()
	_, subscribed := s.subs[e.RoomID]
	s.mu.Unlock()
	if !subscribed {
		return
	}

	select {
	case s.events <- e:
	default:
	}
}
