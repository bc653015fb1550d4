// Package config resolves unconflict's configuration: where it lives, what it
// says, and how a target path is turned into an absolute file path.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// AppName names the per-user configuration subdirectory.
const AppName = "unconflict"

// Dir returns the unconflict configuration directory.
//
// Resolution:
//   - $UNCONFLICT_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/unconflict if set (respects XDG on any platform)
//   - %AppData%/unconflict on Windows
//   - ~/.config/unconflict on macOS and Linux
//
// Returns "" when no home directory can be determined.
func Dir() string {
	if dir := os.Getenv(EnvConfigHome); dir != "" {
		return dir
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}

	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, AppName)
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", AppName)
}

// FilePath returns the path of config.yaml inside Dir, or "" if Dir is unknown.
func FilePath() string {
	dir := Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}

// EnvFilePath returns the path of the global env file inside Dir.
func EnvFilePath() string {
	dir := Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "env")
}
