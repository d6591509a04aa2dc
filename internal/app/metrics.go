package app

import (
	"fmt"
	"time"
)

// Metrics tracks how long actions and frames take.
type Metrics struct {
	actionCount   uint64
	actionFailed  uint64
	actionTotalNs int64
	actionMaxNs   int64

	renderCount   uint64
	renderTotalNs int64
	lastRenderNs  int64

	startTime time.Time
}

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	return &Metrics{startTime: time.Now()}
}

// RecordAction records one dispatched action.
func (m *Metrics) RecordAction(duration time.Duration, failed bool) {
	ns := duration.Nanoseconds()
	m.actionCount++
	m.actionTotalNs += ns
	m.actionMaxNs = max(m.actionMaxNs, ns)
	if failed {
		m.actionFailed++
	}
}

// RecordRender records render timing.
func (m *Metrics) RecordRender(duration time.Duration) {
	m.renderCount++
	m.renderTotalNs += duration.Nanoseconds()
	m.lastRenderNs = duration.Nanoseconds()
}

// Snapshot returns a snapshot of current metrics.
func (m *Metrics) Snapshot() MetricsSnapshot {
	s := MetricsSnapshot{
		Uptime:        time.Since(m.startTime),
		ActionCount:   m.actionCount,
		FailedActions: m.actionFailed,
		MaxActionNs:   m.actionMaxNs,
		RenderCount:   m.renderCount,
		LastRenderNs:  m.lastRenderNs,
	}
	if m.actionCount > 0 {
		s.AvgActionNs = m.actionTotalNs / int64(m.actionCount)
	}
	if m.renderCount > 0 {
		s.AvgRenderNs = m.renderTotalNs / int64(m.renderCount)
	}
	return s
}

// Reset clears all metrics.
func (m *Metrics) Reset() {
	*m = Metrics{startTime: time.Now()}
}

// MetricsSnapshot is a point-in-time view of metrics.
type MetricsSnapshot struct {
	Uptime        time.Duration
	ActionCount   uint64
	FailedActions uint64
	AvgActionNs   int64
	MaxActionNs   int64
	RenderCount   uint64
	AvgRenderNs   int64
	LastRenderNs  int64
}

// String summarizes the snapshot on one line.
func (s MetricsSnapshot) String() string {
	return fmt.Sprintf("%d actions (%d failed), avg %s, max %s; %d renders, avg %s; up %s",
		s.ActionCount, s.FailedActions,
		time.Duration(s.AvgActionNs), time.Duration(s.MaxActionNs),
		s.RenderCount, time.Duration(s.AvgRenderNs),
		s.Uptime.Round(time.Second))
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

// Stop returns the elapsed time and resets the timer.
func (t *Timer) Stop() time.Duration {
	elapsed := t.Elapsed()
	t.start = time.Now()
	return elapsed
}

// Metrics returns the application's metrics.
func (a *Application) Metrics() *Metrics {
	return a.metrics
}
