// Package discover holds the filename and filesystem heuristics: deriving an
// application name from an archive filename, and locating executables and
// icons inside an installed tree. All of it is best effort.
package discover

import (
	"path/filepath"
	"strings"
)

// NameVersion derives an application name and, when recognizable, a version
// from an archive filename: the outer extension is removed, a leftover .tar
// pseudo-extension is removed, and a trailing -<version> segment is split off
// when the character after the last hyphen is a digit.
func NameVersion(archivePath string) (name, version string) {
	name = filepath.Base(archivePath)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	name = strings.TrimSuffix(name, ".tar")

	if i := strings.LastIndexByte(name, '-'); i >= 0 && i+1 < len(name) {
		if c := name[i+1]; c >= '0' && c <= '9' {
			return name[:i], name[i+1:]
		}
	}
	return name, ""
}

// AppName is NameVersion without the version.
func AppName(archivePath string) string {
	name, _ := NameVersion(archivePath)
	return name
}
