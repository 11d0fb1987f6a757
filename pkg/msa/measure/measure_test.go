package measure_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seqforge/mmseqs-msa/pkg/msa/measure"
	"github.com/seqforge/mmseqs-msa/pkg/msa/model"
)

func TestAVGDuration(t *testing.T) {
	t.Parallel()

	m := measure.NewDefaultMeasure()
	mt := m.AddMetric("search")

	mt.AddDuration(2 * time.Second)
	mt.AddDuration(4 * time.Second)

	assert.Equal(t, 3*time.Second, mt.AVGDuration())
}

func TestAVGDurationEmpty(t *testing.T) {
	t.Parallel()

	m := measure.NewDefaultMeasure()
	mt := m.AddMetric("createdb")

	assert.Equal(t, time.Duration(0), mt.AVGDuration())
}

func TestTotalDuration(t *testing.T) {
	t.Parallel()

	m := measure.NewDefaultMeasure()
	mt := m.AddMetric("unpackdb")

	mt.SetTotalDuration(5 * time.Second)
	assert.Equal(t, 5*time.Second, mt.GetTotalDuration())
}

func TestPipelineMeasureRecordsStages(t *testing.T) {
	t.Parallel()

	m := measure.NewDefaultMeasure()
	opt := measure.PipelineMeasure(m)

	require.NoError(t, opt.New())

	stage := &model.StageInfo{Name: "search"}
	require.NoError(t, opt.PrepareStage(model.StartStage, stage))
	require.NoError(t, opt.OnStageDone(stage, 2*time.Second))
	require.NoError(t, opt.Finish())

	mt := m.GetMetric("search")
	require.NotNil(t, mt)
	assert.Equal(t, 2*time.Second, mt.AVGDuration())
	assert.NotZero(t, mt.GetTotalDuration())
}
