package msa

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/seqforge/mmseqs-msa/pkg/fasta"
	"github.com/seqforge/mmseqs-msa/pkg/logger"
)

// workArea is the directory layout of a single run. It is owned exclusively
// by that run; ephemeral areas are removed when the run ends, whatever the
// outcome.
type workArea struct {
	root      string
	ephemeral bool

	queryFasta string
	queryDB    string
	resultDB   string
	msaDB      string
	tmpDir     string
	msaDir     string
	outputA3M  string
}

// newWorkArea resolves the working directory, materializes the query input
// and derives every stage path. When the request names no output directory an
// ephemeral one is created under the system temp dir.
func newWorkArea(req *Request) (*workArea, error) {
	wa := &workArea{}

	if req.OutputDir == "" {
		root := filepath.Join(os.TempDir(), "mmseqs2_"+uuid.NewString())

		err := os.MkdirAll(root, 0o755)
		if err != nil {
			return nil, errors.Wrap(err, "unable to create temporary work directory")
		}

		wa.root = root
		wa.ephemeral = true
	} else {
		err := os.MkdirAll(req.OutputDir, 0o755)
		if err != nil {
			return nil, errors.Wrapf(err, "unable to create output directory %s", req.OutputDir)
		}

		wa.root = req.OutputDir
	}

	name, err := wa.materializeQuery(req)
	if err != nil {
		return nil, err
	}

	wa.queryDB = filepath.Join(wa.root, name+"_db")
	wa.resultDB = filepath.Join(wa.root, name+"_result_db")
	wa.msaDB = filepath.Join(wa.root, name+"_msa_db")
	wa.tmpDir = filepath.Join(wa.root, "tmp")
	wa.msaDir = filepath.Join(wa.root, name+"_msa")
	wa.outputA3M = filepath.Join(wa.root, name+".a3m")

	return wa, nil
}

// materializeQuery writes the inline sequence to a fasta file, or points the
// run at the caller's file. It returns the sequence name used for file naming:
// the explicit one when given, otherwise the first header token of the fasta
// file. A header-less first line keeps the name unchanged.
func (wa *workArea) materializeQuery(req *Request) (string, error) {
	name := req.SequenceName

	if req.Sequence != "" {
		if name == "" {
			name = DefaultSequenceName
		}

		wa.queryFasta = filepath.Join(wa.root, name+".fasta")

		f, err := os.Create(wa.queryFasta)
		if err != nil {
			return "", errors.Wrapf(err, "unable to create query fasta %s", wa.queryFasta)
		}

		err = fasta.WriteRecord(f, name, []byte(req.Sequence))
		if cerr := f.Close(); err == nil {
			err = cerr
		}

		if err != nil {
			return "", errors.Wrap(err, "unable to write query fasta")
		}

		return name, nil
	}

	wa.queryFasta = req.FastaFile

	if name == "" {
		rc, err := fasta.Open(req.FastaFile)
		if err != nil {
			return "", errors.Wrap(err, "unable to open query fasta")
		}

		if id, ok := fasta.HeaderID(rc); ok {
			name = id
		}

		_ = rc.Close()
	}

	if name == "" {
		name = DefaultSequenceName
	}

	return name, nil
}

// cleanup removes an ephemeral work area. Removal errors are logged and
// swallowed so they never mask the run's primary error.
func (wa *workArea) cleanup(log logger.Logger) {
	if !wa.ephemeral {
		return
	}

	err := os.RemoveAll(wa.root)
	if err != nil {
		log.Warn("unable to remove temporary work directory",
			zap.String("dir", wa.root), zap.Error(err))
	}
}
