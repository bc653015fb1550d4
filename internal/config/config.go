package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/gorewood/unconflict/internal/output"
)

// Environment variables read by Load and Dir.
const (
	EnvConfigHome  = "UNCONFLICT_CONFIG_HOME"
	EnvDefaultPath = "UNCONFLICT_DEFAULT_PATH"
	EnvBaseDir     = "UNCONFLICT_BASE_DIR"
)

// DefaultTargetPath is used when neither an argument, config.yaml nor the
// environment names a file.
const DefaultTargetPath = "conflicted.txt"

// Config holds the settings that decide which file gets resolved.
type Config struct {
	// DefaultPath is the target used when no path argument is given.
	DefaultPath string `yaml:"default_path"`
	// BaseDir anchors relative paths. Empty means the working directory.
	BaseDir string `yaml:"base_dir"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{DefaultPath: DefaultTargetPath}
}

// Load returns Default overlaid with config.yaml from Dir (if present) and
// then with environment overrides.
func Load() (Config, error) {
	cfg := Default()
	if path := FilePath(); path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return Config{}, err
		}
	}
	cfg.applyEnv()
	return cfg, nil
}

// LoadFile is Load with an explicit config file in place of config.yaml from
// Dir. Unlike Load, a missing file is an error. Environment overrides still
// apply.
func LoadFile(path string) (Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); err != nil {
		return Config{}, output.NewUserErrorWithCause("config file not found: "+path, err)
	}
	if err := cfg.mergeFile(path); err != nil {
		return Config{}, err
	}
	cfg.applyEnv()
	return cfg, nil
}

// mergeFile overlays non-empty fields from a YAML file. A missing file is ignored.
func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return output.NewSystemErrorWithCause("failed to read config file: "+path, err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return output.NewUserErrorWithCause(fmt.Sprintf("invalid config file %s: %v", path, err), err)
	}

	if fileCfg.DefaultPath != "" {
		c.DefaultPath = fileCfg.DefaultPath
	}
	if fileCfg.BaseDir != "" {
		c.BaseDir = fileCfg.BaseDir
	}
	return nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvDefaultPath); v != "" {
		c.DefaultPath = v
	}
	if v := os.Getenv(EnvBaseDir); v != "" {
		c.BaseDir = v
	}
}

// ResolvePath turns a user-supplied target into a clean absolute path.
// An empty arg selects DefaultPath. Relative paths are joined to BaseDir,
// or to the working directory when BaseDir is empty.
func (c Config) ResolvePath(arg string) (string, error) {
	target := arg
	if target == "" {
		target = c.DefaultPath
	}
	if target == "" {
		return "", output.NewUserError("no file given and no default path configured")
	}
	if filepath.IsAbs(target) {
		return filepath.Clean(target), nil
	}

	base := c.BaseDir
	if base == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", output.NewSystemErrorWithCause("failed to determine working directory", err)
		}
		base = wd
	}

	abs, err := filepath.Abs(filepath.Join(base, target))
	if err != nil {
		return "", output.NewSystemErrorWithCause("failed to resolve path: "+target, err)
	}
	return abs, nil
}
