// Package version provides the scandir version.
package version

import (
	"fmt"
)

const (
	// VersionMajor represents the current major version of scandir.
	VersionMajor = 0
	// VersionMinor represents the current minor version of scandir.
	VersionMinor = 1
	// VersionPatch represents the current patch version of scandir.
	VersionPatch = 0
	// VersionTag represents a tag to be appended to the scandir version
	// string. It must not contain spaces. If empty, no tag is appended to
	// the version string.
	VersionTag = ""
)

// Version provides a stringified version of the current scandir version.
var Version string

func init() {
	// Compute the stringified version.
	if VersionTag != "" {
		Version = fmt.Sprintf("%d.%d.%d-%s", VersionMajor, VersionMinor, VersionPatch, VersionTag)
	} else {
		Version = fmt.Sprintf("%d.%d.%d", VersionMajor, VersionMinor, VersionPatch)
	}
}
