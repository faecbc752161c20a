package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// These variables are set at build time using -ldflags
// Example: go build -ldflags "-X github.com/alexiusacademia/gophb/internal/version.Version=0.3.0"
var (
	Version   = "0.3.0"
	BuildTime = "unknown"
	GitCommit = "unknown"

	Author = "Alexius Academia"
	Year   = "2026"
)

// Info is the build metadata in one line. Commit and build time fall back
// to the VCS stamp of the binary when ldflags did not set them.
func Info() string {
	commit, built := GitCommit, BuildTime
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			switch {
			case s.Key == "vcs.revision" && commit == "unknown":
				commit = s.Value
				if len(commit) > 12 {
					commit = commit[:12]
				}
			case s.Key == "vcs.time" && built == "unknown":
				built = s.Value
			}
		}
	}
	return fmt.Sprintf("gophb %s (commit %s, built %s, %s/%s)", Version, commit, built, runtime.GOOS, runtime.GOARCH)
}
