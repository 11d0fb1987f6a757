// Package mmseqs resolves where the external mmseqs binary and the default
// reference database live. Resolution happens once at startup; the resulting
// paths are injected into the pipeline runner and never change afterwards.
package mmseqs

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// EnvDatabasePath is the environment variable naming the default reference
// database.
const EnvDatabasePath = "MMSEQS2_DB_PATH"

const defaultDatabasePath = "~/.db/protein/uniref100/uniref100.fasta.db_padded"

// DefaultDatabasePath returns the reference database location from the
// environment, falling back to the UniRef100 padded database, with a leading
// ~ expanded to the user's home directory.
func DefaultDatabasePath() string {
	path := os.Getenv(EnvDatabasePath)
	if path == "" {
		path = defaultDatabasePath
	}

	return ExpandHome(path)
}

// ExpandHome replaces a leading ~ with the current user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	if path == "~" {
		return home
	}

	return filepath.Join(home, path[2:])
}

// Locate finds the mmseqs binary. It prefers a tool-adjacent installation
// under <baseDir>/env/bin, then the executable search path, and finally falls
// back to the bare name so a later PATH lookup can still succeed.
func Locate(baseDir string) string {
	if baseDir != "" {
		candidate := filepath.Join(baseDir, "env", "bin", "mmseqs")
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	if path, err := exec.LookPath("mmseqs"); err == nil {
		return path
	}

	return "mmseqs"
}
