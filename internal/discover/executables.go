package discover

import (
	"io/fs"
	"path/filepath"
	"strings"

	"appin/internal/report"
)

// DefaultMaxResults caps how many executables a scan collects.
const DefaultMaxResults = 20

// Libraries, object files and plain scripts/documents are never offered as
// link candidates even when their exec bit is set.
var excludedExts = map[string]struct{}{
	".so": {}, ".a": {}, ".o": {}, ".la": {}, ".dylib": {}, ".dll": {},
	".sh": {}, ".bash": {}, ".zsh": {}, ".fish": {}, ".py": {}, ".pl": {}, ".rb": {},
	".txt": {}, ".md": {}, ".xml": {}, ".json": {}, ".conf": {}, ".cfg": {},
}

// Executables walks root collecting regular files with the owner-exec bit
// set, skipping dotfiles and excluded extensions, and stops once max results
// are found. Walk errors are warnings; whatever was collected is returned.
func Executables(root string, max int) []string {
	var found []string

	filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			report.Warnf("Filesystem error: %v", err)
			return nil
		}
		if len(found) >= max {
			return fs.SkipAll
		}
		if !d.Type().IsRegular() {
			return nil
		}

		name := d.Name()
		if strings.HasPrefix(name, ".") {
			return nil
		}
		if _, excluded := excludedExts[strings.ToLower(filepath.Ext(name))]; excluded {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			report.Warnf("Filesystem error: %v", err)
			return nil
		}
		if info.Mode()&0100 == 0 {
			return nil
		}

		found = append(found, path)
		if len(found) >= max {
			return fs.SkipAll
		}
		return nil
	})

	return found
}
