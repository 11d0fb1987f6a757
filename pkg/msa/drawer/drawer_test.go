package drawer_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seqforge/mmseqs-msa/pkg/msa/drawer"
	"github.com/seqforge/mmseqs-msa/pkg/msa/measure"
	"github.com/seqforge/mmseqs-msa/pkg/msa/model"
)

func TestPipelineDrawerRendersAllStages(t *testing.T) {
	t.Parallel()

	fileName := filepath.Join(t.TempDir(), "pipeline.dot")

	m := measure.NewDefaultMeasure()
	opt := drawer.PipelineDrawer(drawer.NewDOTDrawer(fileName), m)

	require.NoError(t, opt.New())

	parent := model.StartStage
	for _, name := range []string{"createdb", "search", "result2msa", "unpackdb"} {
		stage := &model.StageInfo{Name: name}
		m.AddMetric(name).AddDuration(time.Second)
		require.NoError(t, opt.PrepareStage(parent, stage))
		require.NoError(t, opt.OnStageDone(stage, time.Second))
		parent = stage
	}

	require.NoError(t, opt.Finish())

	content, err := os.ReadFile(fileName)
	require.NoError(t, err)

	got := string(content)
	assert.Contains(t, got, "digraph")

	for _, name := range []string{"start", "createdb", "search", "result2msa", "unpackdb", "end"} {
		assert.Contains(t, got, `"`+name+`"`)
	}

	assert.Contains(t, got, `"unpackdb" -> "end"`)
}

func TestDOTDrawerDuplicateStage(t *testing.T) {
	t.Parallel()

	d := drawer.NewDOTDrawer(filepath.Join(t.TempDir(), "pipeline.dot"))
	require.NoError(t, d.AddStage("search"))
	assert.Error(t, d.AddStage("search"))
}
