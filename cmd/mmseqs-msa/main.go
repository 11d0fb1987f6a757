package main

import (
	"os"

	"github.com/seqforge/mmseqs-msa/cmd"
	"github.com/seqforge/mmseqs-msa/cmd/generate"
	"github.com/seqforge/mmseqs-msa/cmd/serve"
)

func main() {
	rootCmd := cmd.NewRootCommand()

	rootCmd.AddCommand(serve.NewServeCommand())
	rootCmd.AddCommand(generate.NewGenerateCommand())
	rootCmd.AddCommand(cmd.NewVersionCommand())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
