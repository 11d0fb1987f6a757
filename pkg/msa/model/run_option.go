package model

import "time"

// StageInfo describes one stage of a pipeline run.
type StageInfo struct {
	Name string
}

// StartStage and EndStage are the synthetic endpoints of every run.
var (
	StartStage = &StageInfo{Name: "start"}
	EndStage   = &StageInfo{Name: "end"}
)

// RunOption defines the interface for run observers.
type RunOption interface {
	// New initialises the run option.
	New() error
	// PrepareStage runs before the stage is executed.
	PrepareStage(parentStage, stage *StageInfo) error
	// OnStageDone runs after the stage process has exited successfully.
	OnStageDone(stage *StageInfo, elapsed time.Duration) error
	// Finish runs after the whole run has completed successfully.
	Finish() error
}
