package drawer

import (
	"time"

	"github.com/seqforge/mmseqs-msa/pkg/msa/measure"
)

// Drawer renders the stage graph of a pipeline run.
type Drawer interface {
	// AddStage adds a stage vertex to the graph.
	AddStage(stageName string) error
	// AddLink adds an edge between two consecutive stages.
	AddLink(parentStageName, childStageName string) error
	// Draw writes the graph to its destination file.
	Draw() error
	// SetTotalTime labels the end vertex with the elapsed run time.
	SetTotalTime(stageName string, startTime time.Time) error
	// AddMeasure annotates the graph with per-stage timings.
	AddMeasure(measure measure.Measure) error
}
