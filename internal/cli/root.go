package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"appin/internal/archive"
	"appin/internal/config"
	"appin/internal/discover"
	"appin/internal/installer"
	"appin/internal/report"
	"appin/internal/state"
	"appin/internal/version"
)

func Execute() error {
	root, err := newRootCmd()
	if err != nil {
		return err
	}
	return root.Execute()
}

func newRootCmd() (*cobra.Command, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	opts := &config.Options{}
	var links, icon, comment, categories string
	var terminal bool

	cmd := &cobra.Command{
		Use:   "appin [flags] <archive-file>",
		Short: "Install applications from archive files",
		Long: `Install applications from various archive formats into an install root,
link their executables into a bin directory, and optionally create a
desktop entry.

Supported formats: .tar, .tar.gz, .tgz, .tar.bz2, .tbz2, .tar.xz, .txz,
.zip, .deb, .rpm`,
		Example: `  appin app-1.0.tar.gz
  appin -d /usr/local -n myapp app.tar.gz
  appin -l bin/app,bin/app-cli app.zip
  appin --desktop --categories "Development;IDE;" clion.tar.gz`,
		Version:       version.Version,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if desktopRequested(cmd.Flags()) {
				spec := opts.EnsureDesktop()
				spec.Icon = icon
				spec.Comment = comment
				spec.Categories = categories
				spec.Terminal = terminal
			}
			if links != "" {
				opts.LinkBinaries = splitLinks(links)
			}
			return runInstall(opts, args[0])
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.InstallDir, "dir", "d", cfg.InstallDir, "Installation directory")
	flags.StringVarP(&opts.BinDir, "bin", "b", cfg.BinDir, "Binary symlink directory")
	flags.StringVarP(&opts.Name, "name", "n", "", "Application name. Auto-detected if not specified")
	flags.StringVarP(&links, "link", "l", "", "Binaries to symlink, comma-separated relative paths")
	flags.BoolVar(&opts.NoLink, "no-link", false, "Don't create any symlinks")
	flags.BoolVarP(&opts.Force, "force", "f", false, "Overwrite existing installation without prompting")
	flags.BoolVar(&opts.CreateDesktop, "desktop", false, "Create desktop entry")
	flags.StringVar(&icon, "icon", "", "Icon path for desktop entry")
	flags.StringVar(&comment, "comment", "", "Comment for desktop entry")
	flags.StringVar(&categories, "categories", "", "Categories for desktop entry (e.g. Development;IDE;)")
	flags.BoolVar(&terminal, "terminal", false, "Mark desktop entry as terminal application")
	flags.BoolP("version", "v", false, "Show version")

	cmd.AddCommand(newListCmd(), newUninstallCmd())
	return cmd, nil
}

func runInstall(opts *config.Options, archivePath string) error {
	if _, err := os.Stat(archivePath); err != nil {
		return fmt.Errorf("file not found: %s", archivePath)
	}
	opts.Archive = archivePath

	if opts.Name == "" {
		opts.Name = discover.AppName(archivePath)
	}
	report.Infof("Detected app name: %s", opts.Name)

	store, err := state.Open(config.StatePath())
	if err != nil {
		report.Warnf("Could not open install records: %v", err)
		store = nil
	} else {
		defer store.Close()
	}

	inst := installer.New(archive.New(), confirmStdin, store)
	inst.Progress = withSpinner

	res, err := inst.Install(opts)
	if errors.Is(err, installer.ErrCancelled) {
		fmt.Println("Installation cancelled")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("Installation complete!")
	fmt.Printf("Application installed to: %s\n", res.InstallPath)
	return nil
}

// desktopRequested reports whether any desktop-related flag was supplied.
// Only then is the desktop spec materialized; a bare install never touches
// ~/.local/share/applications.
func desktopRequested(flags *pflag.FlagSet) bool {
	for _, name := range []string{"desktop", "icon", "comment", "categories", "terminal"} {
		if flags.Changed(name) {
			return true
		}
	}
	return false
}

func splitLinks(links string) []string {
	var out []string
	for _, part := range strings.Split(links, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
