// Package generate implements the one-shot CLI run of the MSA pipeline.
package generate

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/seqforge/mmseqs-msa/cmd/util"
	"github.com/seqforge/mmseqs-msa/pkg/msa"
	"github.com/seqforge/mmseqs-msa/pkg/msa/drawer"
	"github.com/seqforge/mmseqs-msa/pkg/msa/measure"
	"github.com/seqforge/mmseqs-msa/pkg/msa/model"
)

// NewGenerateCommand returns the generate command: a single pipeline run from
// the command line, printing the alignment (or its path) to stdout.
func NewGenerateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate an MSA for a protein query",
		Example: `  mmseqs-msa generate --sequence MKTFIFLALL --name DHFR
  mmseqs-msa generate --fasta-file query.fasta --output-dir ./out --path-only`,
		RunE: run,
		Args: cobra.NoArgs,
	}

	flags := cmd.Flags()
	flags.String("sequence", "", "inline protein sequence (one-letter codes)")
	flags.String("fasta-file", "", "path to a FASTA file with the query sequence(s)")
	flags.String("name", "", "sequence name used for generated files")
	flags.String("output-dir", "", "persistent output directory (temporary when empty)")
	flags.String("database-path", "", "path to the MMseqs2 reference database")
	flags.String("mmseqs-bin", "", "path to the mmseqs binary (discovered when empty)")
	flags.Bool("gpu", true, "use GPU acceleration for the search")
	flags.Int("threads", msa.DefaultThreads, "number of CPU threads")
	flags.Float64("sensitivity", msa.DefaultSensitivity, "search sensitivity")
	flags.Int("num-iterations", msa.DefaultNumIterations, "number of search iterations")
	flags.Float64("e-value", msa.DefaultEValue, "e-value threshold")
	flags.Int("max-seqs", msa.DefaultMaxSeqs, "maximum number of sequences to return")
	flags.Bool("path-only", false, "print the output file path instead of the alignment")
	flags.String("draw", "", "write the timed stage graph to this DOT file")

	return cmd
}

func run(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	log := util.NewLogger()

	defer func() {
		_ = log.Sync()
	}()

	req, err := requestFromFlags(flags)
	if err != nil {
		return err
	}

	opts := []msa.Option{msa.WithLogger(log)}

	drawFile, _ := flags.GetString("draw")
	if drawFile != "" {
		msr := measure.NewDefaultMeasure()
		opts = append(opts, msa.WithRunOptions(
			[]model.RunOption{
				measure.PipelineMeasure(msr),
				drawer.PipelineDrawer(drawer.NewDOTDrawer(drawFile), msr),
			}...,
		))
	}

	bin, _ := flags.GetString("mmseqs-bin")
	if bin == "" {
		bin = util.ResolveBinary()
	}

	runner := msa.New(bin, opts...)

	result, err := runner.Generate(cmd.Context(), req)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), result)

	return nil
}

func requestFromFlags(flags *pflag.FlagSet) (msa.Request, error) {
	req := msa.DefaultRequest()

	var err error

	if req.Sequence, err = flags.GetString("sequence"); err != nil {
		return req, err
	}

	if req.FastaFile, err = flags.GetString("fasta-file"); err != nil {
		return req, err
	}

	req.SequenceName, _ = flags.GetString("name")
	req.OutputDir, _ = flags.GetString("output-dir")
	req.GPU, _ = flags.GetBool("gpu")
	req.Threads, _ = flags.GetInt("threads")
	req.Sensitivity, _ = flags.GetFloat64("sensitivity")
	req.NumIterations, _ = flags.GetInt("num-iterations")
	req.EValue, _ = flags.GetFloat64("e-value")
	req.MaxSeqs, _ = flags.GetInt("max-seqs")

	req.DatabasePath, _ = flags.GetString("database-path")
	if req.DatabasePath == "" {
		req.DatabasePath = util.ResolveDatabase()
	}

	pathOnly, _ := flags.GetBool("path-only")
	if pathOnly {
		req.ReturnFormat = msa.ReturnPath
	}

	return req, nil
}
