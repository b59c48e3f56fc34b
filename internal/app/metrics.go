package app

import (
	"sync/atomic"
	"time"
)

// Metrics tracks input handling statistics.
type Metrics struct {
	// Event timing
	eventCount   atomic.Uint64
	eventTotalNs atomic.Int64
	eventMinNs   atomic.Int64
	eventMaxNs   atomic.Int64
	lastEventNs  atomic.Int64

	// Outcomes
	rejected  atomic.Uint64
	ignored   atomic.Uint64
	relayouts atomic.Uint64

	// Line-cache rebuilds reported by the editor
	cacheRebuilds atomic.Uint64

	// Output volume
	commands atomic.Uint64
	regions  atomic.Uint64

	// Start time for uptime calculation
	startTime time.Time
}

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	m := &Metrics{
		startTime: time.Now(),
	}
	// Initialize min to max int64 so first event will be smaller
	m.eventMinNs.Store(1<<63 - 1)
	return m
}

// RecordEvent records how long one input took end to end.
func (m *Metrics) RecordEvent(duration time.Duration) {
	ns := duration.Nanoseconds()

	m.eventCount.Add(1)
	m.eventTotalNs.Add(ns)
	m.lastEventNs.Store(ns)

	for {
		old := m.eventMinNs.Load()
		if ns >= old || m.eventMinNs.CompareAndSwap(old, ns) {
			break
		}
	}
	for {
		old := m.eventMaxNs.Load()
		if ns <= old || m.eventMaxNs.CompareAndSwap(old, ns) {
			break
		}
	}
}

// RecordRejected counts an input refused at a capacity or boundary limit.
func (m *Metrics) RecordRejected() {
	m.rejected.Add(1)
}

// RecordIgnored counts an input with no typewriter meaning.
func (m *Metrics) RecordIgnored() {
	m.ignored.Add(1)
}

// RecordRelayout counts a full-grid repaint.
func (m *Metrics) RecordRelayout() {
	m.relayouts.Add(1)
}

// RecordCacheRebuilds stores the editor's running line-cache rebuild count.
func (m *Metrics) RecordCacheRebuilds(total uint64) {
	m.cacheRebuilds.Store(total)
}

// RecordDraw counts draw commands and the dirty regions they covered.
func (m *Metrics) RecordDraw(commands, regions int) {
	m.commands.Add(uint64(commands))
	m.regions.Add(uint64(regions))
}

// Snapshot returns a snapshot of current metrics.
func (m *Metrics) Snapshot() MetricsSnapshot {
	eventCount := m.eventCount.Load()

	var avgEventNs int64
	if eventCount > 0 {
		avgEventNs = m.eventTotalNs.Load() / int64(eventCount)
	}

	minEventNs := m.eventMinNs.Load()
	if minEventNs == 1<<63-1 {
		minEventNs = 0
	}

	return MetricsSnapshot{
		Uptime:        time.Since(m.startTime),
		EventCount:    eventCount,
		AvgEventNs:    avgEventNs,
		MinEventNs:    minEventNs,
		MaxEventNs:    m.eventMaxNs.Load(),
		LastEventNs:   m.lastEventNs.Load(),
		Rejected:      m.rejected.Load(),
		Ignored:       m.ignored.Load(),
		Relayouts:     m.relayouts.Load(),
		CacheRebuilds: m.cacheRebuilds.Load(),
		Commands:      m.commands.Load(),
		Regions:       m.regions.Load(),
	}
}

// Reset clears all metrics.
func (m *Metrics) Reset() {
	m.eventCount.Store(0)
	m.eventTotalNs.Store(0)
	m.eventMinNs.Store(1<<63 - 1)
	m.eventMaxNs.Store(0)
	m.lastEventNs.Store(0)
	m.rejected.Store(0)
	m.ignored.Store(0)
	m.relayouts.Store(0)
	m.cacheRebuilds.Store(0)
	m.commands.Store(0)
	m.regions.Store(0)
	m.startTime = time.Now()
}

// MetricsSnapshot is a point-in-time view of metrics.
type MetricsSnapshot struct {
	Uptime        time.Duration
	EventCount    uint64
	AvgEventNs    int64
	MinEventNs    int64
	MaxEventNs    int64
	LastEventNs   int64
	Rejected      uint64
	Ignored       uint64
	Relayouts     uint64
	CacheRebuilds uint64
	Commands      uint64
	Regions       uint64
}

// CommandsPerEvent returns the average number of draw commands per input.
func (s MetricsSnapshot) CommandsPerEvent() float64 {
	if s.EventCount == 0 {
		return 0
	}
	return float64(s.Commands) / float64(s.EventCount)
}

// RejectRate returns the percentage of inputs that were rejected.
func (s MetricsSnapshot) RejectRate() float64 {
	if s.EventCount == 0 {
		return 0
	}
	return float64(s.Rejected) / float64(s.EventCount) * 100
}

// Timer provides a simple way to measure elapsed time.
type Timer struct {
	start time.Time
}

// StartTimer creates a new timer.
func StartTimer() *Timer {
	return &Timer{start: time.Now()}
}

// Elapsed returns the elapsed time since the timer started.
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}
