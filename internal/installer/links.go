package installer

import (
	"fmt"
	"os"
	"path/filepath"

	"appin/internal/config"
	"appin/internal/discover"
	"appin/internal/report"
)

// linkBinaries wires command-line symlinks for either the caller-specified
// relative paths or an interactively confirmed discovered set. Every failure
// here is a warning; the installation itself already succeeded.
func (in *Installer) linkBinaries(opts *config.Options, target string, res *Result) {
	if err := os.MkdirAll(opts.BinDir, 0755); err != nil {
		report.Warnf("Could not create bin directory %s: %v", opts.BinDir, err)
		return
	}

	if len(opts.LinkBinaries) > 0 {
		for _, rel := range opts.LinkBinaries {
			binPath := filepath.Join(target, rel)
			info, err := os.Stat(binPath)
			if err != nil || !info.Mode().IsRegular() {
				report.Warnf("Binary not found: %s", binPath)
				continue
			}
			// The first named binary drives the desktop Exec key even when
			// the link itself cannot be created.
			if res.PrimaryExec == "" {
				res.PrimaryExec = binPath
			}
			in.createLink(binPath, filepath.Join(opts.BinDir, filepath.Base(rel)), res)
		}
		return
	}

	report.Infof("Searching for executables...")
	executables := discover.Executables(target, discover.DefaultMaxResults)
	if len(executables) == 0 {
		return
	}

	fmt.Println("Found executables:")
	for i, exe := range executables {
		rel, err := filepath.Rel(target, exe)
		if err != nil {
			rel = exe
		}
		fmt.Printf("  %d: %s\n", i+1, rel)
	}

	if !in.confirm("Create symlinks for these binaries? (y/N): ") {
		return
	}
	for _, exe := range executables {
		if res.PrimaryExec == "" {
			res.PrimaryExec = exe
		}
		in.createLink(exe, filepath.Join(opts.BinDir, filepath.Base(exe)), res)
	}
}

func (in *Installer) createLink(target, link string, res *Result) {
	if _, err := os.Lstat(link); err == nil {
		if err := os.Remove(link); err != nil {
			report.Warnf("Could not remove existing %s: %v", link, err)
			return
		}
	}

	if err := os.Symlink(target, link); err != nil {
		report.Warnf("Could not create symlink %s -> %s: %v", link, target, err)
		return
	}

	report.Infof("Created symlink: %s -> %s", link, target)
	res.Links = append(res.Links, link)
}
