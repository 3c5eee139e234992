package monitoring

import (
	"sync"
	"time"
)

// Monitor tracks runtime counters surfaced on the status endpoint.
type Monitor struct {
	mu        sync.RWMutex
	counters  map[string]int64
	startTime time.Time
}

// NewMonitor creates a new monitoring instance
func NewMonitor() *Monitor {
	return &Monitor{
		counters:  make(map[string]int64),
		startTime: time.Now(),
	}
}

// Increment bumps a named counter by one.
func (m *Monitor) Increment(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counters[name]++
}

// RecordAdvice tracks one served advice request by category.
func (m *Monitor) RecordAdvice(category string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counters["advice_total"]++
	m.counters["advice_"+category]++
}

// Counter returns a specific counter value
func (m *Monitor) Counter(name string) int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.counters[name]
}

// Snapshot returns all current counters plus uptime
func (m *Monitor) Snapshot() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	// Copy to avoid concurrent map access by the caller
	snapshot := make(map[string]interface{}, len(m.counters)+1)
	for k, v := range m.counters {
		snapshot[k] = v
	}
	snapshot["uptime_seconds"] = time.Since(m.startTime).Seconds()

	return snapshot
}

// Reset clears all counters
func (m *Monitor) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counters = make(map[string]int64)
}
