package msa

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrMissingQuery is returned when neither an inline sequence nor a fasta
	// file is supplied.
	ErrMissingQuery = errors.New("either a sequence or a fasta file must be provided")
	// ErrConflictingQuery is returned when both query sources are supplied.
	ErrConflictingQuery = errors.New("only one of sequence or fasta file may be provided")
	// ErrDatabaseNotFound is returned when the reference database path does
	// not exist on disk.
	ErrDatabaseNotFound = errors.New("database not found")
)

// ToolError reports a non-zero exit from an external pipeline stage. It
// carries the full command line and the captured error stream of the failing
// process.
type ToolError struct {
	Stage    string
	Args     []string
	Stderr   []byte
	ExitCode int
}

func (e *ToolError) Error() string {
	msg := fmt.Sprintf("mmseqs %s failed with exit code %d: %s", e.Stage, e.ExitCode, strings.Join(e.Args, " "))

	if errOut := bytes.TrimSpace(e.Stderr); len(errOut) > 0 {
		msg += fmt.Sprintf("\nerror output: %s", errOut)
	}

	return msg
}
