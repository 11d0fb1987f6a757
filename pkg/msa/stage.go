package msa

import (
	"strconv"
	"time"
)

const (
	// msaFormatMode selects the a3m serialization of result2msa.
	msaFormatMode = "6"
	// UnpackSuffix is the file suffix unpackdb gives every alignment fragment.
	UnpackSuffix = ".a3m"
)

// stage is one external pipeline step: an mmseqs subcommand with its full
// argument list.
type stage struct {
	name string
	args []string
}

// Invocation is the record of one executed stage. Immutable after capture;
// used only for logging and error construction.
type Invocation struct {
	Stage    string
	Args     []string
	Stdout   []byte
	Stderr   []byte
	ExitCode int
	Elapsed  time.Duration
}

// buildStages lays out the four external stages in execution order. The GPU
// switch goes right after the search subcommand, ahead of the positional
// arguments.
func buildStages(wa *workArea, req *Request) []stage {
	search := []string{"search"}
	if req.GPU {
		search = append(search, "--gpu", "1")
	}

	search = append(search,
		wa.queryDB, req.DatabasePath, wa.resultDB, wa.tmpDir,
		"--threads", strconv.Itoa(req.Threads),
		"-s", formatFloat(req.Sensitivity),
		"--num-iterations", strconv.Itoa(req.NumIterations),
		"-e", formatFloat(req.EValue),
		"--max-seqs", strconv.Itoa(req.MaxSeqs),
	)

	return []stage{
		{name: "createdb", args: []string{"createdb", wa.queryFasta, wa.queryDB}},
		{name: "search", args: search},
		{name: "result2msa", args: []string{
			"result2msa", wa.queryDB, req.DatabasePath, wa.resultDB, wa.msaDB,
			"--msa-format-mode", msaFormatMode,
		}},
		{name: "unpackdb", args: []string{
			"unpackdb", wa.msaDB, wa.msaDir,
			"--unpack-suffix", UnpackSuffix,
		}},
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
