package version

import (
	"fmt"
	"runtime/debug"
)

var (
	// These variables are set via -ldflags during build
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Get returns the version, attempting to resolve it from debug.BuildInfo
// when the binary was installed with go install.
func Get() string {
	if Version == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if info.Main.Path == "github.com/mydehq/annictl" && info.Main.Version != "" {
				return info.Main.Version
			}
		}
	}
	return Version
}

// String returns a formatted version string
func String() string {
	return fmt.Sprintf("%s (Commit: %s, Built: %s)", Get(), Commit, Date)
}
