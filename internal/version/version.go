// Package version holds build metadata set with -ldflags "-X".
package version

import "fmt"

var (
	// Version is the current application version
	Version = "dev"
	// GitSHA is the git commit SHA
	GitSHA = "unknown"
	// BuildTime is the build timestamp
	BuildTime = "unknown"
)

// String returns a one-line summary for -version output.
func String() string {
	return fmt.Sprintf("hxform %s (commit %s, built %s)", Version, GitSHA, BuildTime)
}
