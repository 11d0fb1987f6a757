package msa

import (
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/pkg/errors"
)

// collectFragments concatenates every alignment fragment found in msaDir into
// the aggregate file, in ascending filename order and with no separator
// between fragments. Zero fragments yields an empty aggregate file.
func collectFragments(msaDir, outputA3M string) (int, error) {
	matches, err := filepath.Glob(filepath.Join(msaDir, "*"+UnpackSuffix))
	if err != nil {
		return 0, errors.Wrap(err, "unable to list alignment fragments")
	}

	sort.Strings(matches)

	out, err := os.Create(outputA3M)
	if err != nil {
		return 0, errors.Wrapf(err, "unable to create %s", outputA3M)
	}

	for _, frag := range matches {
		err := appendFragment(out, frag)
		if err != nil {
			_ = out.Close()

			return 0, err
		}
	}

	err = out.Close()
	if err != nil {
		return 0, errors.Wrapf(err, "unable to close %s", outputA3M)
	}

	return len(matches), nil
}

func appendFragment(out io.Writer, frag string) error {
	in, err := os.Open(frag)
	if err != nil {
		return errors.Wrapf(err, "unable to open fragment %s", frag)
	}

	_, err = io.Copy(out, in)

	_ = in.Close()

	if err != nil {
		return errors.Wrapf(err, "unable to append fragment %s", frag)
	}

	return nil
}
