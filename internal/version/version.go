// Package version carries build metadata injected through -ldflags. The
// zero values identify an untagged local build.
package version

var (
	Version = "dev"
	Commit  = "none"
	Date    = ""
	Dirty   = "false"
)
