// Package version reports the name and build of the program. The version
// number can be set at link time with:
//
//	-ldflags "-X github.com/jetsetilly/pong13h/version.number=v0.1.0"
package version

import (
	"fmt"
	"runtime/debug"
)

// The name to use when referring to the application
const ApplicationName = "Pong13h"

// set by the linker for release builds
var number string

var version string
var revision string

// Version returns the version string, the revision string and whether this is a
// numbered release. Builds without a number report "unreleased" when vcs
// information is available and "local" otherwise
func Version() (string, string, bool) {
	return version, revision, number != "" && version == number
}

// Title returns the application name decorated with the version for release
// builds or the revision for everything else. Suitable for a window title
func Title() string {
	ver, rev, rel := Version()
	if rel {
		return fmt.Sprintf("%s (%s)", ApplicationName, ver)
	}
	return fmt.Sprintf("%s (%s)", ApplicationName, rev)
}

// Banner is the line printed by the -version flag
func Banner() string {
	ver, rev, _ := Version()
	return fmt.Sprintf("%s %s (%s)", ApplicationName, ver, rev)
}

// build summarises the vcs settings of a binary
type build struct {
	vcs      bool
	revision string
	modified bool
}

func readBuild(info *debug.BuildInfo) build {
	var b build
	if info == nil {
		return b
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs":
			b.vcs = true
		case "vcs.revision":
			b.revision = s.Value
		case "vcs.modified":
			b.modified = s.Value == "true"
		}
	}
	return b
}

// resolve returns the version and revision strings for a numbered or
// unnumbered build
func resolve(number string, b build) (string, string) {
	rev := "no revision information"
	if b.revision != "" {
		rev = b.revision
		if b.modified {
			rev = fmt.Sprintf("%s+dirty", rev)
		}
	}

	switch {
	case number != "":
		return number, rev
	case b.vcs:
		return "unreleased", rev
	}
	return "local", rev
}

func init() {
	info, _ := debug.ReadBuildInfo()
	version, revision = resolve(number, readBuild(info))
}
