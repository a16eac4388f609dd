package config

import (
	"os"
	"path/filepath"
	"strings"
)

const appName = "genpass"

// XDGConfigHome returns the XDG config home or a default fallback.
func XDGConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

// XDGDataHome returns the XDG data home or a default fallback.
func XDGDataHome() string {
	if v := os.Getenv("XDG_DATA_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".local", "share")
}

// DefaultWordListDir returns the directory searched for named word lists.
func DefaultWordListDir() string {
	return filepath.Join(XDGConfigHome(), appName, "wordlists")
}

// ResolveWordListPath maps a bare list name such as "de" to
// <config>/genpass/wordlists/de.txt. Paths are returned unchanged.
func ResolveWordListPath(name string) string {
	if name == "" || strings.ContainsRune(name, os.PathSeparator) || strings.ContainsRune(name, '/') || filepath.Ext(name) != "" {
		return name
	}
	return filepath.Join(DefaultWordListDir(), name+".txt")
}

// DefaultDBPath returns the default path for the SQLite history database.
func DefaultDBPath() string {
	return filepath.Join(XDGDataHome(), appName, appName+".db")
}

// DefaultConfigPath returns the default TOML config path.
func DefaultConfigPath() string {
	return filepath.Join(XDGConfigHome(), appName, "config.toml")
}
