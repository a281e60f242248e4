// Package build holds build-time information.
package build

import "runtime/debug"

// These default to development values and are overwritten by linker flags.
var (
	// Version is the application version.
	Version = "dev"
	// Commit is the git commit the binary was built from.
	Commit = "none"
	// Date is the build timestamp.
	Date = "unknown"

	readBuildInfo = debug.ReadBuildInfo
)

const develVersion = "(devel)"

// Revision identifies the binary for cached data. It is Version when set by
// linker flags, otherwise the module version recorded by the Go toolchain, then
// the VCS revision, and "dev" when neither is available.
func Revision() string {
	if Version != "dev" {
		return Version
	}

	info, ok := readBuildInfo()
	if !ok {
		return Version
	}
	if v := info.Main.Version; v != "" && v != develVersion {
		return v
	}

	var revision, modified string
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			modified = s.Value
		}
	}
	if revision == "" {
		return Version
	}
	if modified == "true" {
		return revision + "-dirty"
	}
	return revision
}
