// Package cmd contains all the commands included in the binary file.
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/seqforge/mmseqs-msa/internal/build"
)

// NewRootCommand enables all children commands to read settings from CLI
// flags, environment variables prefixed with MMSEQS_MSA, or config.yaml (in
// that order).
func NewRootCommand() *cobra.Command {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("MMSEQS_MSA")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	configPaths := []string{"/etc/mmseqs-msa", "$HOME/.mmseqs-msa", "."}
	for _, path := range configPaths {
		viper.AddConfigPath(path)
	}

	viper.SetDefault("database-path", "")
	viper.SetDefault("mmseqs-bin", "")
	viper.SetDefault("log-format", "json")
	viper.SetDefault("log-level", "info")
	viper.SetDefault("max-concurrent", 1)

	_ = viper.ReadInConfig()

	return &cobra.Command{
		Use:   "mmseqs-msa",
		Short: "Generate protein multiple sequence alignments with MMseqs2",
		Long: `mmseqs-msa drives the MMseqs2 sequence search suite to produce multiple
sequence alignments (a3m) from a protein query, either as a one-shot CLI run
or served as Model Context Protocol tools over stdio.`,
	}
}

// NewVersionCommand reports the stamped build version.
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of mmseqs-msa",
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "mmseqs-msa %s (%s)\n", build.Version, build.Commit)

			return nil
		},
		Args: cobra.NoArgs,
	}
}
