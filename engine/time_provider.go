package engine

import (
	"sync"
	"time"
)

// Sleeper blocks the game loop between ticks
type Sleeper interface {
	Sleep(d time.Duration)
}

// TimeSleeper sleeps on the real clock
type TimeSleeper struct{}

// NewTimeSleeper creates a real clock sleeper
func NewTimeSleeper() *TimeSleeper {
	return &TimeSleeper{}
}

// Sleep pauses the calling goroutine for d
func (TimeSleeper) Sleep(d time.Duration) {
	time.Sleep(d)
}

// MockSleeper records requested sleeps without blocking, for testing
type MockSleeper struct {
	mu     sync.Mutex
	sleeps []time.Duration
}

// NewMockSleeper creates a new mock sleeper
func NewMockSleeper() *MockSleeper {
	return &MockSleeper{}
}

// Sleep records d and returns immediately
func (m *MockSleeper) Sleep(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sleeps = append(m.sleeps, d)
}

// Sleeps returns a copy of all recorded durations
func (m *MockSleeper) Sleeps() []time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]time.Duration, len(m.sleeps))
	copy(out, m.sleeps)
	return out
}

// Total returns the sum of all recorded durations
func (m *MockSleeper) Total() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	var total time.Duration
	for _, d := range m.sleeps {
		total += d
	}
	return total
}
