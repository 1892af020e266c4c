// Package where implements a cross-platform resolver for application-specific filesystem paths.
package where

import (
	"os"
	"path/filepath"

	"github.com/livegrid/livegrid/constant"
	"github.com/livegrid/livegrid/filesystem"
	"github.com/samber/lo"
)

// EnvConfigPath is the environment variable identifier used to override the default configuration directory.
const EnvConfigPath = "LIVEGRID_CONFIG_PATH"

func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config resolves the absolute path to the primary application configuration directory.
// The path can be overridden via the LIVEGRID_CONFIG_PATH environment variable.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.Livegrid))
}

// Cache resolves the absolute path to the application's persistent cache directory.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(".", "cache")
	}
	return ensureDir(filepath.Join(base, constant.Livegrid))
}

// Logs resolves the directory holding daily log files.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// Grid resolves the file holding the persisted grid, a JSON array of URL strings.
func Grid() string {
	return filepath.Join(Config(), "grid.json")
}

// Channels resolves the cache file mapping channel handles to channel ids.
func Channels() string {
	return filepath.Join(Cache(), "channels.json")
}

// URLs resolves the file ranking previously pasted URLs for input suggestions.
func URLs() string {
	return filepath.Join(Cache(), "urls.json")
}

// Temp resolves a volatile directory for mpv IPC sockets and other transient artifacts.
func Temp() string {
	return ensureDir(filepath.Join(os.TempDir(), constant.Livegrid))
}
