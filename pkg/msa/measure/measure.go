// Package measure records wall-clock timings for pipeline stages. External
// search runs are dominated by the search stage, and the per-stage breakdown
// is the first thing worth looking at when a run is slow.
package measure

import (
	"sync"
)

// DefaultMeasure is the in-memory Measure implementation.
type DefaultMeasure struct {
	mu     sync.Mutex
	Stages map[string]Metric
}

// NewDefaultMeasure creates an empty measure.
func NewDefaultMeasure() *DefaultMeasure {
	return &DefaultMeasure{
		Stages: make(map[string]Metric),
	}
}

func (m *DefaultMeasure) AddMetric(name string) Metric {
	m.mu.Lock()
	defer m.mu.Unlock()

	mt := &DefaultMetric{
		mu: &sync.Mutex{},
	}
	m.Stages[name] = mt

	return mt
}

// GetMetric returns the metric for a stage, or nil when unknown.
func (m *DefaultMeasure) GetMetric(name string) Metric {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.Stages[name]
}

func (m *DefaultMeasure) AllMetrics() map[string]Metric {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.Stages
}

var _ Measure = (*DefaultMeasure)(nil)
