package discover

import (
	"os"
	"path/filepath"
)

// Icon probes an ordered list of conventional icon locations under the
// install dir and returns the first that exists. Order encodes precedence:
// specific locations before generic ones.
func Icon(installDir, appName string) (string, bool) {
	patterns := []string{
		"bin/" + appName + ".svg",
		"bin/" + appName + ".png",
		"share/icons/" + appName + ".svg",
		"share/icons/" + appName + ".png",
		"share/pixmaps/" + appName + ".svg",
		"share/pixmaps/" + appName + ".png",
		"icon.svg",
		"icon.png",
		appName + ".svg",
		appName + ".png",
	}

	for _, pattern := range patterns {
		path := filepath.Join(installDir, pattern)
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
	}
	return "", false
}
