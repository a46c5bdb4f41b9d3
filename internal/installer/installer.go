// Package installer sequences one archive installation: stage, collapse,
// resolve the install path, copy into place, link executables, synthesize a
// desktop entry, record the result. It owns the staging directory for the
// whole run.
package installer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"appin/internal/archive"
	"appin/internal/config"
	"appin/internal/desktop"
	"appin/internal/discover"
	"appin/internal/report"
	"appin/internal/state"
)

// ErrCancelled marks a user decline of the overwrite prompt. It is a clean
// no-op exit, not a failure.
var ErrCancelled = errors.New("installation cancelled")

// Confirmer asks the user a yes/no question. The command line binds it to a
// stdin line read; tests stub it.
type Confirmer func(prompt string) bool

// Progress starts an activity indicator and returns its stop function.
type Progress func(desc string) (stop func())

type Installer struct {
	extractor *archive.Extractor
	confirm   Confirmer
	store     *state.Store // nil when the state db is unavailable

	// Progress is optional presentation around the extraction phase.
	Progress Progress
}

type Result struct {
	Name         string
	Version      string
	InstallPath  string
	Links        []string
	PrimaryExec  string
	DesktopEntry string
}

func New(extractor *archive.Extractor, confirm Confirmer, store *state.Store) *Installer {
	return &Installer{
		extractor: extractor,
		confirm:   confirm,
		store:     store,
	}
}

func (in *Installer) Install(opts *config.Options) (*Result, error) {
	format := archive.Detect(opts.Archive)
	if format == archive.FormatUnknown {
		return nil, fmt.Errorf("unable to detect archive format for: %s", opts.Archive)
	}

	staging := filepath.Join(os.TempDir(), fmt.Sprintf("appin-%d", os.Getpid()))
	if err := os.MkdirAll(staging, 0755); err != nil {
		return nil, fmt.Errorf("failed to create staging directory: %w", err)
	}
	defer os.RemoveAll(staging)

	stop := func() {}
	if in.Progress != nil {
		stop = in.Progress("Extracting archive...")
	}
	err := in.extractor.Extract(opts.Archive, staging, format)
	stop()
	if err != nil {
		return nil, err
	}

	source := collapseWrapper(staging)

	target := filepath.Join(opts.InstallDir, opts.Name)
	if abs, err := filepath.Abs(target); err == nil {
		target = abs
	}

	if _, err := os.Lstat(target); err == nil {
		if !opts.Force {
			prompt := fmt.Sprintf("Installation directory already exists: %s\noverwrite? (y/N): ", target)
			if !in.confirm(prompt) {
				return nil, ErrCancelled
			}
		}
		if err := os.RemoveAll(target); err != nil {
			return nil, fmt.Errorf("failed to remove existing installation: %w", err)
		}
	}

	report.Infof("Installing to: %s", target)
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return nil, fmt.Errorf("failed to create install directory: %w", err)
	}
	if err := copyTree(source, target); err != nil {
		return nil, fmt.Errorf("failed to install: %w", err)
	}

	res := &Result{Name: opts.Name, InstallPath: target}
	_, res.Version = discover.NameVersion(opts.Archive)

	if !opts.NoLink {
		in.linkBinaries(opts, target, res)
	}

	if opts.CreateDesktop && opts.Desktop != nil {
		in.writeDesktopEntry(opts, target, res)
	}

	in.record(opts, res)

	return res, nil
}

// collapseWrapper treats an archive's sole top-level directory as
// transparent: its contents become the tree to install.
func collapseWrapper(staging string) string {
	entries, err := os.ReadDir(staging)
	if err != nil {
		return staging
	}
	if len(entries) == 1 && entries[0].IsDir() {
		return filepath.Join(staging, entries[0].Name())
	}
	return staging
}

func (in *Installer) writeDesktopEntry(opts *config.Options, target string, res *Result) {
	spec := opts.Desktop

	if spec.Name == "" {
		spec.Name = opts.Name
	}
	if spec.Exec == "" {
		spec.Exec = res.PrimaryExec
	}
	if spec.Exec == "" {
		if candidates := discover.Executables(target, 1); len(candidates) > 0 {
			spec.Exec = candidates[0]
		} else {
			report.Warnf("No executable found for desktop entry")
			return
		}
	}
	if spec.Icon == "" {
		if icon, ok := discover.Icon(target, opts.Name); ok {
			spec.Icon = icon
		}
	}

	path, err := desktop.Write(spec)
	if err != nil {
		report.Warnf("Could not create desktop entry: %v", err)
		return
	}
	report.Infof("Created desktop entry: %s", path)
	res.DesktopEntry = path
}

// record persists the result. State problems never fail the install.
func (in *Installer) record(opts *config.Options, res *Result) {
	if in.store == nil {
		return
	}
	err := in.store.Add(&state.Record{
		Name:         res.Name,
		Version:      res.Version,
		Archive:      opts.Archive,
		Path:         res.InstallPath,
		Links:        res.Links,
		DesktopEntry: res.DesktopEntry,
		InstalledAt:  time.Now(),
	})
	if err != nil {
		report.Warnf("Could not record installation: %v", err)
	}
}

// Uninstall removes a recorded installation: its symlinks, its desktop
// entry, the install tree, then the record itself.
func (in *Installer) Uninstall(name string) error {
	if in.store == nil {
		return fmt.Errorf("install records are unavailable")
	}

	rec, err := in.store.Get(name)
	if err != nil {
		return err
	}
	if rec == nil {
		return fmt.Errorf("no recorded installation for %s", name)
	}

	for _, link := range rec.Links {
		if err := os.Remove(link); err != nil && !os.IsNotExist(err) {
			report.Warnf("Could not remove symlink %s: %v", link, err)
		}
	}
	if rec.DesktopEntry != "" {
		if err := os.Remove(rec.DesktopEntry); err != nil && !os.IsNotExist(err) {
			report.Warnf("Could not remove desktop entry %s: %v", rec.DesktopEntry, err)
		}
	}
	if err := os.RemoveAll(rec.Path); err != nil {
		return fmt.Errorf("failed to remove %s: %w", rec.Path, err)
	}

	return in.store.Remove(name)
}
