// Package util provides the configuration-resolution helpers shared by the
// serve and generate commands.
package util

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/seqforge/mmseqs-msa/internal/mmseqs"
	"github.com/seqforge/mmseqs-msa/pkg/logger"
)

// ResolveBinary returns the mmseqs binary to run: the configured override
// when present, otherwise the discovered install.
func ResolveBinary() string {
	if bin := viper.GetString("mmseqs-bin"); bin != "" {
		return mmseqs.ExpandHome(bin)
	}

	return mmseqs.Locate(installBase())
}

// installBase is the directory the binary was installed under, so a bundled
// env/bin/mmseqs next to it is found first.
func installBase() string {
	exe, err := os.Executable()
	if err != nil {
		return ""
	}

	return filepath.Dir(filepath.Dir(exe))
}

// ResolveDatabase returns the configured reference database, falling back to
// the environment-driven default.
func ResolveDatabase() string {
	if db := viper.GetString("database-path"); db != "" {
		return mmseqs.ExpandHome(db)
	}

	return mmseqs.DefaultDatabasePath()
}

// NewLogger builds the process logger from the configured format and level.
func NewLogger() *logger.ZapLogger {
	return logger.MustNewLogger(viper.GetString("log-format"), viper.GetString("log-level"))
}
