// Package version reports MotorScope build metadata. Values are injected
// with -ldflags and fall back to the module build info embedded by the
// Go toolchain.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Build-time variables injected via ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// commit returns GitCommit, or the VCS revision recorded by `go build`
// when ldflags did not set one.
func commit() string {
	if GitCommit != "unknown" {
		return GitCommit
	}
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return GitCommit
	}
	for _, s := range bi.Settings {
		if s.Key == "vcs.revision" && s.Value != "" {
			if len(s.Value) > 12 {
				return s.Value[:12]
			}
			return s.Value
		}
	}
	return GitCommit
}

// Info returns a one-line description for `motorscope version`.
func Info() string {
	return fmt.Sprintf("MotorScope %s (commit: %s, built: %s, go: %s)",
		Version, commit(), BuildDate, runtime.Version())
}

// Short returns just the version string.
func Short() string {
	return Version
}

// Map returns build info for the health endpoint.
func Map() map[string]string {
	return map[string]string{
		"version":    Version,
		"git_commit": commit(),
		"build_date": BuildDate,
		"go_version": runtime.Version(),
		"os":         runtime.GOOS,
		"arch":       runtime.GOARCH,
	}
}
