// Package paths resolves where the keycell CLI keeps its configuration
// and its data. Every resolver applies the same precedence: explicit
// flag first, then environment, then a platform default.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

const appDirName = "keycell"

// DefaultDataDirName is the CWD-relative data directory used when no
// override is active.
const DefaultDataDirName = ".keycell-db"

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "KEYCELL_CONFIG_DIR"
	EnvDataDir   = "KEYCELL_DATA_DIR"
)

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// ResolveConfigDir returns the configuration directory, first match wins:
// the flag, KEYCELL_CONFIG_DIR, then DefaultConfigDir. Flag and env values
// are made absolute.
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveDataDir returns the data directory, first match wins: the flag,
// the config-file value, KEYCELL_DATA_DIR, then .keycell-db under the
// current directory. The data dir deliberately defaults relative to the
// CWD rather than a platform location, so each working tree gets its own
// trace database.
func ResolveDataDir(flag, configValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configValue != "" {
		return filepath.Abs(configValue)
	}
	if env := os.Getenv(EnvDataDir); env != "" {
		return filepath.Abs(env)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, DefaultDataDirName), nil
}

// DefaultConfigDir returns the platform config directory for keycell:
// $XDG_CONFIG_HOME (or ~/.config) on Linux, os.UserConfigDir elsewhere
// (~/Library/Application Support on macOS, %APPDATA% on Windows).
func DefaultConfigDir() (string, error) {
	return appDir("XDG_CONFIG_HOME", ".config")
}

// DefaultDataDir returns the platform data directory for keycell:
// $XDG_DATA_HOME (or ~/.local/share) on Linux, and the same location as
// DefaultConfigDir elsewhere.
func DefaultDataDir() (string, error) {
	return appDir("XDG_DATA_HOME", ".local", "share")
}

// appDir picks the base directory and appends the app name. Only Linux
// distinguishes config from data; the other platforms keep both under
// the user config dir.
func appDir(xdgVar string, linuxFallback ...string) (string, error) {
	if runtime.GOOS != "linux" {
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, appDirName), nil
	}
	if xdg := os.Getenv(xdgVar); xdg != "" {
		return filepath.Join(xdg, appDirName), nil
	}
	home, err := platformDir.homeDir()
	if err != nil {
		return "", err
	}
	parts := append([]string{home}, linuxFallback...)
	return filepath.Join(append(parts, appDirName)...), nil
}
