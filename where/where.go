// Package where implements a cross-platform resolver for application-specific filesystem paths.
package where

import (
	"os"
	"path/filepath"

	"github.com/samber/lo"
	"github.com/tubefetch/tubefetch/constant"
	"github.com/tubefetch/tubefetch/filesystem"
)

// EnvConfigPath is the environment variable identifier used to override the default configuration directory.
const EnvConfigPath = "TUBEFETCH_CONFIG_PATH"

func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config resolves the absolute path to the primary application configuration directory.
// The path can be overridden via the TUBEFETCH_CONFIG_PATH environment variable.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.App))
}

// Cache resolves the absolute path to the application's persistent cache directory.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(".", "cache")
	}
	return ensureDir(filepath.Join(base, constant.App))
}

// Logs resolves the directory used for diagnostic logs.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// History resolves the path to the lookup history file.
func History() string {
	return filepath.Join(Config(), "history.json")
}

// Queries resolves the path to the video identifier suggestion registry.
func Queries() string {
	return filepath.Join(Cache(), "queries.json")
}

// Downloads resolves the default directory for saved streams.
func Downloads() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ensureDir(filepath.Join(".", "downloads"))
	}
	return ensureDir(filepath.Join(home, "Downloads", constant.App))
}

// Temp resolves a volatile path for partially downloaded files.
func Temp() string {
	return ensureDir(filepath.Join(os.TempDir(), constant.App))
}
