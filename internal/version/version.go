// Package version reports which build of maze is running.
package version

import (
	"fmt"
	"runtime/debug"
)

// Commit and BuildTime are set at build time via ldflags. When they are left
// unset, the VCS stamp the Go toolchain embeds in the binary is used instead.
var (
	Commit    = "unknown"
	BuildTime = "unknown"
)

var readBuildInfo = debug.ReadBuildInfo

// String returns the version string, e.g. "maze dev (commit: 1a2b3c4, built: ...)".
// A "+dirty" suffix marks builds from a modified working tree.
func String() string {
	commit, built, dirty := resolve()
	if dirty {
		commit += "+dirty"
	}
	return fmt.Sprintf("maze dev (commit: %s, built: %s)", commit, built)
}

func resolve() (commit, built string, dirty bool) {
	commit, built = Commit, BuildTime

	if info, ok := readBuildInfo(); ok {
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if commit == "unknown" {
					commit = s.Value
				}
			case "vcs.time":
				if built == "unknown" {
					built = s.Value
				}
			case "vcs.modified":
				dirty = s.Value == "true"
			}
		}
	}

	if len(commit) > 7 {
		commit = commit[:7]
	}
	return commit, built, dirty
}
