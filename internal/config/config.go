package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"appin/internal/desktop"
)

const (
	DefaultInstallDir = "/opt"
	DefaultBinDir     = "/usr/local/bin"
)

// Config holds the installation defaults, overridable from
// ~/.appin/config.toml and then by command-line flags.
type Config struct {
	InstallDir string `toml:"install_dir"`
	BinDir     string `toml:"bin_dir"`
}

// Options is one resolved install request.
type Options struct {
	Archive       string
	InstallDir    string
	BinDir        string
	Name          string
	LinkBinaries  []string
	NoLink        bool
	Force         bool
	CreateDesktop bool

	// Desktop is allocated the first time any desktop-related option is
	// supplied and stays nil otherwise.
	Desktop *desktop.Entry
}

// EnsureDesktop returns the desktop spec, allocating it on first touch.
func (o *Options) EnsureDesktop() *desktop.Entry {
	if o.Desktop == nil {
		o.Desktop = &desktop.Entry{}
	}
	return o.Desktop
}

// Dir is the per-user appin directory.
func Dir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".appin")
}

// StatePath is the location of the install-record database.
func StatePath() string {
	return filepath.Join(Dir(), "state.db")
}

// Load reads the defaults file if present; a missing file yields the
// built-in defaults.
func Load() (*Config, error) {
	cfg := &Config{
		InstallDir: DefaultInstallDir,
		BinDir:     DefaultBinDir,
	}

	path := filepath.Join(Dir(), "config.toml")
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
