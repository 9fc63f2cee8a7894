package config

import (
	"os"
	"path/filepath"
)

// EnvConfigPath names the environment variable that points at an
// explicit configuration file.
const EnvConfigPath = "LINEPAD_CONFIG"

// Loader locates and loads the configuration file.
type Loader struct {
	Version      string // build version; "dev" enables the local rc file
	OverridePath string // -config flag value, wins when set
}

// NewLoader creates a Loader.
func NewLoader(version, overridePath string) *Loader {
	return &Loader{Version: version, OverridePath: overridePath}
}

// Load reads the configuration, or returns defaults when no file exists.
func (l *Loader) Load() (*Config, error) {
	path := l.GetConfigPath()
	if path == "" {
		return New(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// GetConfigPath returns the configuration file in effect, or empty when
// none exists. Lookup order: the override path, $LINEPAD_CONFIG, a local
// .linepadrc in dev builds, $XDG_CONFIG_HOME/linepad/config.rc,
// ~/.config/linepad/config.rc, ~/.linepadrc.
func (l *Loader) GetConfigPath() string {
	if l.OverridePath != "" {
		if _, err := os.Stat(l.OverridePath); err == nil {
			return l.OverridePath
		}
	}

	if env := os.Getenv(EnvConfigPath); env != "" {
		if _, err := os.Stat(env); err == nil {
			return env
		}
	}

	if l.Version == "dev" {
		wd, _ := os.Getwd()
		localPath := filepath.Join(wd, ".linepadrc")
		if _, err := os.Stat(localPath); err == nil {
			return localPath
		}
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		path := filepath.Join(xdg, "linepad", "config.rc")
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	home, _ := os.UserHomeDir()
	path := filepath.Join(home, ".config", "linepad", "config.rc")
	if _, err := os.Stat(path); err == nil {
		return path
	}

	path = filepath.Join(home, ".linepadrc")
	if _, err := os.Stat(path); err == nil {
		return path
	}

	return ""
}
