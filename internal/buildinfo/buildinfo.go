package buildinfo

import (
	"fmt"
	"runtime/debug"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// Commit is set at build time via -ldflags.
var Commit = "unknown"

// Date is set at build time via -ldflags.
var Date = "unknown"

var readBuildInfo = debug.ReadBuildInfo

// Short returns a compact build identifier for logging. Without ldflags it
// falls back to the VCS revision the toolchain stamped into the binary.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	if rev := vcsRevision(); rev != "" {
		return rev
	}
	return "dev"
}

// String is the -version output.
func String() string {
	return fmt.Sprintf("planet %s (commit %s, built %s)", Version, Commit, Date)
}

func vcsRevision() string {
	info, ok := readBuildInfo()
	if !ok {
		return ""
	}
	var rev string
	var dirty bool
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if len(rev) > 12 {
		rev = rev[:12]
	}
	if rev != "" && dirty {
		rev += "+dirty"
	}
	return rev
}
