package measure

import (
	"time"

	"github.com/seqforge/mmseqs-msa/pkg/msa/model"
)

type runMeasure struct {
	m         Measure
	startTime time.Time
}

func (rm *runMeasure) New() error { return nil }

func (rm *runMeasure) PrepareStage(_, stage *model.StageInfo) error {
	rm.m.AddMetric(stage.Name)

	return nil
}

func (rm *runMeasure) OnStageDone(stage *model.StageInfo, elapsed time.Duration) error {
	mt, ok := rm.m.AllMetrics()[stage.Name]
	if !ok {
		mt = rm.m.AddMetric(stage.Name)
	}

	mt.AddDuration(elapsed)

	return nil
}

func (rm *runMeasure) Finish() error {
	for _, mt := range rm.m.AllMetrics() {
		mt.SetTotalDuration(time.Since(rm.startTime))
	}

	return nil
}

// PipelineMeasure returns a run option that records per-stage durations into m.
func PipelineMeasure(m Measure) model.RunOption {
	return &runMeasure{m: m, startTime: time.Now()}
}
