// Package config provides XDG Base Directory specification compliance utilities.
package config

import (
	"os"
	"path/filepath"
)

const (
	appName      = "tabshell"
	databaseName = "tabshell.sqlite"
)

// XDGDirs holds the XDG Base Directory paths for the application.
type XDGDirs struct {
	ConfigHome string
	DataHome   string
	StateHome  string
	CacheHome  string
}

// GetXDGDirs returns the XDG Base Directory paths for tabshell.
// It follows the XDG Base Directory specification:
// - $XDG_CONFIG_HOME/tabshell (default: ~/.config/tabshell)
// - $XDG_DATA_HOME/tabshell (default: ~/.local/share/tabshell)
// - $XDG_STATE_HOME/tabshell (default: ~/.local/state/tabshell)
// - $XDG_CACHE_HOME/tabshell (default: ~/.cache/tabshell)
func GetXDGDirs() (*XDGDirs, error) {
	// Development mode: use .dev directory in current working directory
	if os.Getenv("ENV") == "dev" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		devDir := filepath.Join(cwd, ".dev", appName)
		return &XDGDirs{
			ConfigHome: devDir,
			DataHome:   devDir,
			StateHome:  devDir,
			CacheHome:  filepath.Join(devDir, "cache"),
		}, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	return &XDGDirs{
		ConfigHome: xdgPath("XDG_CONFIG_HOME", filepath.Join(homeDir, ".config")),
		DataHome:   xdgPath("XDG_DATA_HOME", filepath.Join(homeDir, ".local", "share")),
		StateHome:  xdgPath("XDG_STATE_HOME", filepath.Join(homeDir, ".local", "state")),
		CacheHome:  xdgPath("XDG_CACHE_HOME", filepath.Join(homeDir, ".cache")),
	}, nil
}

func xdgPath(envKey, fallback string) string {
	base := os.Getenv(envKey)
	if base == "" {
		base = fallback
	}
	return filepath.Join(base, appName)
}

// GetConfigDir returns the XDG config directory for tabshell.
func GetConfigDir() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return dirs.ConfigHome, nil
}

// GetDataDir returns the XDG data directory for tabshell.
func GetDataDir() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return dirs.DataHome, nil
}

// GetCacheDir returns the XDG cache directory for tabshell.
func GetCacheDir() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return dirs.CacheHome, nil
}

// GetDatabasePath returns the default database file location.
func GetDatabasePath() (string, error) {
	dataDir, err := GetDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, databaseName), nil
}
