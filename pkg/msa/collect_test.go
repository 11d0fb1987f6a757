package msa

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectFragmentsOrdered(t *testing.T) {
	t.Parallel()

	msaDir := t.TempDir()
	for name, content := range map[string]string{
		"b.a3m": "B",
		"a.a3m": "A",
		"c.a3m": "C",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(msaDir, name), []byte(content), 0o600))
	}

	// Files with other suffixes are not fragments.
	require.NoError(t, os.WriteFile(filepath.Join(msaDir, "ignore.txt"), []byte("X"), 0o600))

	out := filepath.Join(t.TempDir(), "query.a3m")

	count, err := collectFragments(msaDir, out)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	content, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "ABC", string(content))
}

func TestCollectFragmentsMissingDir(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "query.a3m")

	count, err := collectFragments(filepath.Join(t.TempDir(), "missing"), out)
	require.NoError(t, err)
	assert.Zero(t, count)

	content, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Empty(t, content)
}
