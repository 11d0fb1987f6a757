package fasta_test

import (
	"bytes"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seqforge/mmseqs-msa/pkg/fasta"
)

func TestWriteRecord(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	err := fasta.WriteRecord(&buf, "query", []byte("MKTFIFLALL"))
	require.NoError(t, err)
	assert.Equal(t, ">query\nMKTFIFLALL\n", buf.String())
}

func TestHeaderID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		wantID string
		wantOK bool
	}{
		{name: "plain header", input: ">DHFR\nMKTF\n", wantID: "DHFR", wantOK: true},
		{name: "header with description", input: ">sp|P00374|DYR_HUMAN Dihydrofolate reductase\nMKTF\n", wantID: "sp|P00374|DYR_HUMAN", wantOK: true},
		{name: "no marker", input: "MKTF\n", wantOK: false},
		{name: "empty first line", input: "\n>DHFR\n", wantOK: false},
		{name: "marker only", input: ">\nMKTF\n", wantOK: false},
		{name: "empty input", input: "", wantOK: false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			id, ok := fasta.HeaderID(strings.NewReader(tc.input))
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.wantID, id)
		})
	}
}

func TestOpenPlain(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "query.fasta")
	require.NoError(t, os.WriteFile(path, []byte(">q\nMKTF\n"), 0o600))

	rc, err := fasta.Open(path)
	require.NoError(t, err)

	defer rc.Close()

	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, ">q\nMKTF\n", string(got))
}

func TestOpenGzip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "query.fasta.gz")

	var buf bytes.Buffer

	gw := gzip.NewWriter(&buf)
	_, err := gw.Write([]byte(">q\nMKTF\n"))
	require.NoError(t, err)
	require.NoError(t, gw.Close())
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))

	rc, err := fasta.Open(path)
	require.NoError(t, err)

	defer rc.Close()

	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, ">q\nMKTF\n", string(got))
}

func TestOpenMissing(t *testing.T) {
	t.Parallel()

	_, err := fasta.Open(filepath.Join(t.TempDir(), "nope.fasta"))
	assert.Error(t, err)
}
