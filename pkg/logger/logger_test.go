package logger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seqforge/mmseqs-msa/pkg/logger"
)

func TestNewLogger(t *testing.T) {
	t.Parallel()

	log, err := logger.NewLogger("json", "info")
	require.NoError(t, err)
	assert.NotNil(t, log)

	log, err = logger.NewLogger("text", "debug")
	require.NoError(t, err)
	assert.NotNil(t, log)
}

func TestNewLoggerNoneLevel(t *testing.T) {
	t.Parallel()

	log, err := logger.NewLogger("json", "none")
	require.NoError(t, err)
	assert.NotNil(t, log)
}

func TestNewLoggerBadLevel(t *testing.T) {
	t.Parallel()

	_, err := logger.NewLogger("json", "loud")
	assert.Error(t, err)
}
