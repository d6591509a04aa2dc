package dispatcher

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Metrics collects per-action dispatch statistics.
type Metrics struct {
	actionMetrics map[string]*ActionMetrics

	totalDispatches uint64
	totalErrors     uint64
	totalPanics     uint64
	totalDuration   time.Duration
}

// ActionMetrics holds metrics for a specific action.
type ActionMetrics struct {
	Name          string
	DispatchCount uint64
	ErrorCount    uint64
	TotalDuration time.Duration
	MinDuration   time.Duration
	MaxDuration   time.Duration
	LastErr       error
}

// NewMetrics creates a new metrics collector.
func NewMetrics() *Metrics {
	return &Metrics{
		actionMetrics: make(map[string]*ActionMetrics),
	}
}

// RecordDispatch records one dispatch of actionName.
func (m *Metrics) RecordDispatch(actionName string, duration time.Duration, err error) {
	m.totalDispatches++
	m.totalDuration += duration
	if err != nil {
		m.totalErrors++
	}

	am := m.actionMetrics[actionName]
	if am == nil {
		am = &ActionMetrics{
			Name:        actionName,
			MinDuration: duration,
			MaxDuration: duration,
		}
		m.actionMetrics[actionName] = am
	}

	am.DispatchCount++
	am.TotalDuration += duration
	am.LastErr = err
	am.MinDuration = min(am.MinDuration, duration)
	am.MaxDuration = max(am.MaxDuration, duration)
	if err != nil {
		am.ErrorCount++
	}
}

// RecordPanic records a recovered panic.
func (m *Metrics) RecordPanic() {
	m.totalPanics++
}

// TotalDispatches returns the total number of dispatches.
func (m *Metrics) TotalDispatches() uint64 {
	return m.totalDispatches
}

// TotalErrors returns the number of dispatches that failed.
func (m *Metrics) TotalErrors() uint64 {
	return m.totalErrors
}

// TotalPanics returns the number of panics recovered.
func (m *Metrics) TotalPanics() uint64 {
	return m.totalPanics
}

// AverageDuration returns the average dispatch duration.
func (m *Metrics) AverageDuration() time.Duration {
	if m.totalDispatches == 0 {
		return 0
	}
	return m.totalDuration / time.Duration(m.totalDispatches)
}

// ActionStats returns a copy of the metrics for one action, or nil.
func (m *Metrics) ActionStats(actionName string) *ActionMetrics {
	am := m.actionMetrics[actionName]
	if am == nil {
		return nil
	}
	c := *am
	return &c
}

// TopActions returns the n most dispatched actions.
func (m *Metrics) TopActions(n int) []*ActionMetrics {
	actions := make([]*ActionMetrics, 0, len(m.actionMetrics))
	for _, am := range m.actionMetrics {
		c := *am
		actions = append(actions, &c)
	}
	sort.Slice(actions, func(i, j int) bool {
		if actions[i].DispatchCount != actions[j].DispatchCount {
			return actions[i].DispatchCount > actions[j].DispatchCount
		}
		return actions[i].Name < actions[j].Name
	})
	return actions[:min(n, len(actions))]
}

// Summary lists the n most dispatched actions as name=count pairs.
func (m *Metrics) Summary(n int) string {
	top := m.TopActions(n)
	parts := make([]string, len(top))
	for i, am := range top {
		parts[i] = fmt.Sprintf("%s=%d", am.Name, am.DispatchCount)
	}
	return strings.Join(parts, " ")
}

// Reset clears all metrics.
func (m *Metrics) Reset() {
	m.actionMetrics = make(map[string]*ActionMetrics)
	m.totalDispatches = 0
	m.totalErrors = 0
	m.totalPanics = 0
	m.totalDuration = 0
}

// AverageActionDuration returns the average duration of the action.
func (am *ActionMetrics) AverageActionDuration() time.Duration {
	if am.DispatchCount == 0 {
		return 0
	}
	return am.TotalDuration / time.Duration(am.DispatchCount)
}

// ErrorRate returns the error rate as a percentage.
func (am *ActionMetrics) ErrorRate() float64 {
	if am.DispatchCount == 0 {
		return 0
	}
	return float64(am.ErrorCount) / float64(am.DispatchCount) * 100
}
