package version

import (
	"fmt"
	"runtime"
)

// Set at build time with -ldflags "-X tinyhttpd/internal/version.Version=...".
var (
	Version   = "dev"
	BuildDate = "unknown"
	Commit    = "unknown"
)

func GetVersion() string {
	return fmt.Sprintf("tinyhttpd %s (commit: %s, built: %s, %s)", Version, Commit, BuildDate, runtime.Version())
}
