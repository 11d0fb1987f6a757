package measure

import "time"

// Measure aggregates timing metrics for every stage of a run.
type Measure interface {
	AddMetric(name string) Metric
	AllMetrics() map[string]Metric
}

// Metric holds the timings of a single stage.
type Metric interface {
	AddDuration(elapsed time.Duration)
	AVGDuration() time.Duration
	SetTotalDuration(endDuration time.Duration)
	GetTotalDuration() time.Duration
}
