package engine

import "time"

// MockTimeProvider is a hand-cranked clock for deterministic tests
// Tests own the tick loop, so no locking: Advance and Now run on the one
// goroutine that drives the stage
type MockTimeProvider struct {
	current time.Time
}

func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{current: start}
}

func (m *MockTimeProvider) Now() time.Time {
	return m.current
}

// Advance moves the clock forward by d
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.current = m.current.Add(d)
}
