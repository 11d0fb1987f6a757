// Package fasta provides the small set of FASTA helpers the pipeline needs:
// writing a single-record query file, deriving a sequence identifier from the
// first header line, and opening plain or gzip-compressed files.
package fasta

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// Marker is the FASTA header record marker.
const Marker = '>'

// WriteRecord writes a single FASTA record with the given identifier.
func WriteRecord(w io.Writer, id string, seq []byte) error {
	_, err := fmt.Fprintf(w, ">%s\n%s\n", id, seq)
	if err != nil {
		return errors.Wrap(err, "unable to write fasta record")
	}

	return nil
}

// HeaderID reads the first line of r and returns the identifier it carries:
// the first whitespace-delimited token after the leading '>' marker.
// It returns ok=false when the first line is empty or does not start with
// the marker; callers keep whatever identifier they already had.
func HeaderID(r io.Reader) (string, bool) {
	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		return "", false
	}

	line := strings.TrimSpace(scanner.Text())
	if line == "" || line[0] != Marker {
		return "", false
	}

	fields := strings.Fields(line[1:])
	if len(fields) == 0 {
		return "", false
	}

	return fields[0], true
}

// multiReadCloser closes multiple io.Closers when Close() is called.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}

	return err
}

// Open opens path for reading, transparently decompressing gzip input.
// Gzip is detected by magic number (1F 8B) or by a .gz suffix.
func Open(path string) (io.ReadCloser, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to open %s", path)
	}

	var sig [2]byte

	n, _ := fh.Read(sig[:])

	_, err = fh.Seek(0, io.SeekStart)
	if err != nil {
		_ = fh.Close()

		return nil, errors.Wrapf(err, "unable to rewind %s", path)
	}

	if (n == 2 && sig[0] == 0x1f && sig[1] == 0x8b) || strings.HasSuffix(path, ".gz") {
		gr, err := gzip.NewReader(fh)
		if err != nil {
			_ = fh.Close()

			return nil, errors.Wrapf(err, "unable to open gzip reader for %s", path)
		}

		return &multiReadCloser{Reader: gr, closers: []io.Closer{gr, fh}}, nil
	}

	return fh, nil
}
