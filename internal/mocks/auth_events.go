package mocks

import "sync"

// AuthEvent is one recorded authentication event.
type AuthEvent struct {
	Event   string
	Outcome string
}

// MockAuthEventRecorder records every authentication event it receives.
type MockAuthEventRecorder struct {
	mu     sync.Mutex
	events []AuthEvent
}

// RecordAuthEvent implements service.AuthEventRecorder
func (m *MockAuthEventRecorder) RecordAuthEvent(event, outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, AuthEvent{Event: event, Outcome: outcome})
}

// Events returns a copy of the recorded events in order.
func (m *MockAuthEventRecorder) Events() []AuthEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]AuthEvent, len(m.events))
	copy(out, m.events)
	return out
}
