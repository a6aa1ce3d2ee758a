// Package buildinfo carries the version stamp injected with
// -ldflags "-X fbgfx/internal/buildinfo.Version=...".
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns a compact build identifier for the window title and logs.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		if len(Commit) > 12 {
			return Commit[:12]
		}
		return Commit
	}
	return "dev"
}

// String is the full stamp logged at startup.
func String() string {
	return fmt.Sprintf("fbgfx %s (commit %s, built %s)", Version, Commit, Date)
}
