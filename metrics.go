package goAuthLocal

import "sync/atomic"

// MetricID identifies a specific counter in the in-process metrics
// system.
type MetricID uint16

const (
	// MetricLoginSuccess counts successful logins.
	MetricLoginSuccess MetricID = iota
	// MetricLoginFailure counts failed logins, including invalid input.
	MetricLoginFailure
	// MetricLoginRateLimited counts logins rejected by the cooldown.
	MetricLoginRateLimited
	// MetricSignupSuccess counts successful signups.
	MetricSignupSuccess
	// MetricSignupDuplicate counts signups rejected for a taken email.
	MetricSignupDuplicate
	// MetricSignupFailure counts all other failed signups.
	MetricSignupFailure
	// MetricLogout counts logout calls, successful or not.
	MetricLogout
	// MetricSessionRestored counts startups that resumed a session.
	MetricSessionRestored
	// MetricSessionRestoreFault counts startups degraded to logged-out
	// by a storage fault.
	MetricSessionRestoreFault
	// MetricStorageFault counts persistence I/O failures surfaced to
	// callers.
	MetricStorageFault

	metricIDCount
)

const cacheLineSize = 64

type paddedCounter struct {
	value uint64
	_     [cacheLineSize - 8]byte
}

// Metrics holds atomic counters. All operations are allocation-free on
// the write path; a nil Metrics is a no-op.
type Metrics struct {
	counters [metricIDCount]paddedCounter
}

func newMetrics() *Metrics {
	return &Metrics{}
}

// Inc adds one to the counter. Unknown IDs are ignored.
func (m *Metrics) Inc(id MetricID) {
	if m == nil || id >= metricIDCount {
		return
	}
	atomic.AddUint64(&m.counters[id].value, 1)
}

// Get returns the live value of one counter.
func (m *Metrics) Get(id MetricID) uint64 {
	if m == nil || id >= metricIDCount {
		return 0
	}
	return atomic.LoadUint64(&m.counters[id].value)
}

// MetricsSnapshot is a point-in-time deep copy of all counters.
type MetricsSnapshot struct {
	Counters map[MetricID]uint64
}

// Snapshot copies every counter into a fresh map.
func (m *Metrics) Snapshot() MetricsSnapshot {
	snap := MetricsSnapshot{Counters: make(map[MetricID]uint64, metricIDCount)}
	if m == nil {
		return snap
	}
	for id := MetricID(0); id < metricIDCount; id++ {
		snap.Counters[id] = atomic.LoadUint64(&m.counters[id].value)
	}
	return snap
}
