package app

import "fmt"

// Build information is stamped with -ldflags by the release build.
var (
    BuildVersion = "0.0.0-dev"
    BuildCommit  = "unknown"
    BuildDate    = "unknown"
)

// VersionString is what `goroadmap -version` prints.
func VersionString() string {
    return fmt.Sprintf("goroadmap %s (commit %s, built %s)", BuildVersion, BuildCommit, BuildDate)
}
