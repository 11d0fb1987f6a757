package msa

import (
	"os"

	"github.com/pkg/errors"
)

// Search defaults forwarded verbatim to the mmseqs search stage.
const (
	DefaultSequenceName  = "query"
	DefaultThreads       = 64
	DefaultSensitivity   = 7.5
	DefaultNumIterations = 10
	DefaultEValue        = 0.001
	DefaultMaxSeqs       = 100000
)

// ReturnFormat selects the shape of the result returned to the caller.
type ReturnFormat string

const (
	// ReturnContent returns the full a3m text of the aggregate alignment.
	ReturnContent ReturnFormat = "a3m"
	// ReturnPath returns the absolute path of the aggregate alignment file.
	ReturnPath ReturnFormat = "path"
)

// Request describes one MSA generation run. Exactly one of Sequence and
// FastaFile must be set.
type Request struct {
	// Sequence is an inline protein sequence in one-letter amino acid codes.
	Sequence string
	// FastaFile is a path to a FASTA file holding the query sequence(s).
	FastaFile string
	// SequenceName names generated files. When empty it is derived from the
	// fasta file header, falling back to "query".
	SequenceName string
	// OutputDir is a persistent destination for all artifacts. When empty an
	// ephemeral directory is used and removed when the run ends.
	OutputDir string
	// DatabasePath locates the target reference database.
	DatabasePath string
	// GPU requests GPU acceleration from the search stage.
	GPU bool
	// Search tunables.
	Threads       int
	Sensitivity   float64
	NumIterations int
	EValue        float64
	MaxSeqs       int
	// ReturnFormat selects content or path output. Defaults to content.
	ReturnFormat ReturnFormat
}

// DefaultRequest returns a Request with all tunables at their defaults.
func DefaultRequest() Request {
	return Request{
		SequenceName:  DefaultSequenceName,
		GPU:           true,
		Threads:       DefaultThreads,
		Sensitivity:   DefaultSensitivity,
		NumIterations: DefaultNumIterations,
		EValue:        DefaultEValue,
		MaxSeqs:       DefaultMaxSeqs,
		ReturnFormat:  ReturnContent,
	}
}

// applyDefaults fills zero-valued tunables. SequenceName is left alone so the
// work area can tell an explicit name from a derivable one.
func (r *Request) applyDefaults() {
	if r.Threads == 0 {
		r.Threads = DefaultThreads
	}

	if r.Sensitivity == 0 {
		r.Sensitivity = DefaultSensitivity
	}

	if r.NumIterations == 0 {
		r.NumIterations = DefaultNumIterations
	}

	if r.EValue == 0 {
		r.EValue = DefaultEValue
	}

	if r.MaxSeqs == 0 {
		r.MaxSeqs = DefaultMaxSeqs
	}

	if r.ReturnFormat == "" {
		r.ReturnFormat = ReturnContent
	}
}

// validate rejects bad requests before any external process is spawned.
func (r *Request) validate() error {
	if r.Sequence == "" && r.FastaFile == "" {
		return ErrMissingQuery
	}

	if r.Sequence != "" && r.FastaFile != "" {
		return ErrConflictingQuery
	}

	if r.DatabasePath == "" {
		return errors.Wrap(ErrDatabaseNotFound, "no database path configured")
	}

	if _, err := os.Stat(r.DatabasePath); err != nil {
		return errors.Wrapf(ErrDatabaseNotFound, "at %s", r.DatabasePath)
	}

	return nil
}
