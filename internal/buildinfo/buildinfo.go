// Package buildinfo holds version information injected at build time:
//
//	go build -ldflags "-X github.com/diskspace-io/diskspace/internal/buildinfo.Version=v1.0.0"
package buildinfo

import "fmt"

var (
	Version    = "dev"
	CommitHash = "unknown"
	BuildDate  = "unknown"
)

// Summary is the one-line build description used in logs and version output,
// e.g. "v1.0.0 (3f2a9c1, 2026-01-02)".
func Summary() string {
	commit := CommitHash
	if len(commit) > 7 {
		commit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", Version, commit, BuildDate)
}
