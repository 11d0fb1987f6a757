// Package build holds the version information stamped in at link time.
package build

var (
	// Version is the release version, overridden via ldflags.
	Version = "dev"
	// Commit is the git commit the binary was built from.
	Commit = "none"
)
