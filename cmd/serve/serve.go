// Package serve implements the command that serves the MSA tools over MCP.
package serve

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/seqforge/mmseqs-msa/cmd/util"
	"github.com/seqforge/mmseqs-msa/internal/build"
	"github.com/seqforge/mmseqs-msa/internal/server"
	"github.com/seqforge/mmseqs-msa/pkg/msa"
)

// NewServeCommand returns the serve command. All flags can also be set via
// MMSEQS_MSA_* environment variables or the config file.
func NewServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the MSA generation tools over MCP stdio",
		RunE:  run,
		Args:  cobra.NoArgs,
	}

	flags := cmd.Flags()
	flags.String("database-path", "", "path to the MMseqs2 reference database")
	flags.String("mmseqs-bin", "", "path to the mmseqs binary (discovered when empty)")
	flags.Int64("max-concurrent", 1, "maximum number of concurrent pipeline runs")

	_ = viper.BindPFlags(flags)

	return cmd
}

func run(_ *cobra.Command, _ []string) error {
	log := util.NewLogger()

	defer func() {
		_ = log.Sync()
	}()

	bin := util.ResolveBinary()
	log.Info("resolved mmseqs binary", zap.String("bin", bin))

	runner := msa.New(bin, msa.WithLogger(log))

	srv := server.New(runner, log, server.Config{
		DatabasePath:  util.ResolveDatabase(),
		MaxConcurrent: viper.GetInt64("max-concurrent"),
	}, build.Version)

	return srv.ServeStdio()
}
