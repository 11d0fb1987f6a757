package drawer

import (
	"time"

	"github.com/pkg/errors"

	"github.com/seqforge/mmseqs-msa/pkg/msa/measure"
	"github.com/seqforge/mmseqs-msa/pkg/msa/model"
)

type pipelineDrawer struct {
	Drawer
	m         measure.Measure
	startTime time.Time
	lastStage string
}

func (pd *pipelineDrawer) New() error {
	err := pd.AddStage(model.StartStage.Name)
	if err != nil {
		return errors.Wrap(err, "unable to add start stage to drawer")
	}

	err = pd.AddStage(model.EndStage.Name)
	if err != nil {
		return errors.Wrap(err, "unable to add end stage to drawer")
	}

	pd.lastStage = model.StartStage.Name

	return nil
}

func (pd *pipelineDrawer) PrepareStage(parentStage, stage *model.StageInfo) error {
	err := pd.AddStage(stage.Name)
	if err != nil {
		return err
	}

	err = pd.AddLink(parentStage.Name, stage.Name)
	if err != nil {
		return err
	}

	pd.lastStage = stage.Name

	return nil
}

func (pd *pipelineDrawer) OnStageDone(stage *model.StageInfo, elapsed time.Duration) error {
	return nil
}

func (pd *pipelineDrawer) Finish() error {
	err := pd.AddLink(pd.lastStage, model.EndStage.Name)
	if err != nil {
		return errors.Wrap(err, "unable to link last stage to end")
	}

	if pd.m != nil {
		err := pd.SetTotalTime(model.EndStage.Name, pd.startTime)
		if err != nil {
			return errors.Wrap(err, "unable to set total time")
		}

		err = pd.AddMeasure(pd.m)
		if err != nil {
			return errors.Wrap(err, "unable to add measure")
		}
	}

	err = pd.Draw()
	if err != nil {
		return errors.Wrap(err, "unable to draw pipeline")
	}

	return nil
}

// PipelineDrawer returns a run option that records the stage graph into d and
// renders it when the run finishes. The measure may be nil.
func PipelineDrawer(d Drawer, m measure.Measure) model.RunOption {
	return &pipelineDrawer{Drawer: d, m: m, startTime: time.Now()}
}
