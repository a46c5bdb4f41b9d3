// Package desktop writes freedesktop launcher entries for installed
// applications.
package desktop

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// Entry is the launcher descriptor. Unset fields are filled from install
// results just before writing.
type Entry struct {
	Name       string
	Exec       string
	Icon       string
	Comment    string
	Categories string
	Terminal   bool
}

// Write renders the entry into the user's application-launcher directory and
// returns the path of the written file. Keys are emitted in a fixed order.
func Write(e *Entry) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}

	dir := filepath.Join(home, ".local", "share", "applications")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	buf.WriteString("[Desktop Entry]\n")
	buf.WriteString("Version=1.0\n")
	buf.WriteString("Type=Application\n")
	fmt.Fprintf(&buf, "Name=%s\n", e.Name)
	if e.Icon != "" {
		fmt.Fprintf(&buf, "Icon=%s\n", e.Icon)
	}
	fmt.Fprintf(&buf, "Exec=%s %%f\n", e.Exec)
	if e.Comment != "" {
		fmt.Fprintf(&buf, "Comment=%s\n", e.Comment)
	}
	if e.Categories != "" {
		fmt.Fprintf(&buf, "Categories=%s\n", e.Categories)
	} else {
		buf.WriteString("Categories=Application;\n")
	}
	fmt.Fprintf(&buf, "Terminal=%t\n", e.Terminal)
	buf.WriteString("StartupNotify=true\n")

	path := filepath.Join(dir, e.Name+".desktop")
	if err := os.WriteFile(path, buf.Bytes(), 0600); err != nil {
		return "", err
	}
	return path, nil
}
