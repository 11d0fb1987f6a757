package server

import (
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seqforge/mmseqs-msa/pkg/logger"
	"github.com/seqforge/mmseqs-msa/pkg/msa"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	runner := msa.New("mmseqs")

	return New(runner, logger.NewNoopLogger(), Config{
		DatabasePath:  "/data/db/uniref100",
		MaxConcurrent: 2,
	}, "test")
}

func toolRequest(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Name = "generate_msa"
	req.Params.Arguments = args

	return req
}

func TestRequestFromArgsDefaults(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)

	got := s.requestFromArgs(toolRequest(map[string]any{
		"sequence": "MKTF",
	}))

	assert.Equal(t, "MKTF", got.Sequence)
	assert.Empty(t, got.FastaFile)
	assert.Equal(t, "/data/db/uniref100", got.DatabasePath)
	assert.True(t, got.GPU)
	assert.Equal(t, msa.DefaultThreads, got.Threads)
	assert.InDelta(t, msa.DefaultSensitivity, got.Sensitivity, 0)
	assert.Equal(t, msa.DefaultNumIterations, got.NumIterations)
	assert.InDelta(t, msa.DefaultEValue, got.EValue, 0)
	assert.Equal(t, msa.DefaultMaxSeqs, got.MaxSeqs)
	assert.Equal(t, msa.ReturnContent, got.ReturnFormat)
}

func TestRequestFromArgsOverrides(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)

	got := s.requestFromArgs(toolRequest(map[string]any{
		"fasta_file":     "/tmp/query.fasta",
		"sequence_name":  "DHFR",
		"output_dir":     "/tmp/out",
		"database_path":  "/data/db/custom",
		"gpu":            false,
		"threads":        8,
		"sensitivity":    5.7,
		"num_iterations": 3,
		"e_value":        0.01,
		"max_seqs":       500,
		"return_format":  "path",
	}))

	assert.Equal(t, "/tmp/query.fasta", got.FastaFile)
	assert.Equal(t, "DHFR", got.SequenceName)
	assert.Equal(t, "/tmp/out", got.OutputDir)
	assert.Equal(t, "/data/db/custom", got.DatabasePath)
	assert.False(t, got.GPU)
	assert.Equal(t, 8, got.Threads)
	assert.InDelta(t, 5.7, got.Sensitivity, 0)
	assert.Equal(t, 3, got.NumIterations)
	assert.InDelta(t, 0.01, got.EValue, 0)
	assert.Equal(t, 500, got.MaxSeqs)
	assert.Equal(t, msa.ReturnPath, got.ReturnFormat)
}

func TestConcurrencyCapDefaultsToOne(t *testing.T) {
	t.Parallel()

	runner := msa.New("mmseqs")
	s := New(runner, logger.NewNoopLogger(), Config{}, "test")

	require.NotNil(t, s.sem)
}
