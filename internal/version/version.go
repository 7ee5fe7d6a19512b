// Package version records build metadata stamped in by the linker.
package version

import "fmt"

// These variables are populated by the Go linker (LDFLAGS) at build time;
// see the Build target in magefile.go.
var (
	Version    = "dev"
	CommitHash = "unknown"
	BuildDate  = "unknown"
)

// String returns the one-line form printed by --version.
func String() string {
	return fmt.Sprintf("%s (%s, %s)", Version, CommitHash, BuildDate)
}
