// Package build holds build-time information.
package build

import "fmt"

// These default to development values and are overwritten by linker flags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String describes the build in one line.
func String() string {
	return fmt.Sprintf("%s (commit: %s, date: %s)", Version, Commit, Date)
}
