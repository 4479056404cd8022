// Package config loads the optional YAML configuration for the md2html CLI.
// Configuration only governs file handling; the Markdown dialect is fixed.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alnah/go-md2html/internal/fileutil"
	"github.com/alnah/go-md2html/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrInvalidConfig   = errors.New("invalid config")
)

// MaxInputSizeLimit caps input.maxSize (1 GiB).
const MaxInputSizeLimit = 1 << 30

// configDirName is the directory searched under the user config directory.
const configDirName = "go-md2html"

// Config holds all configuration for a conversion run.
type Config struct {
	Input  InputConfig  `yaml:"input"`
	Output OutputConfig `yaml:"output"`
}

// InputConfig defines input reading options.
type InputConfig struct {
	MaxSize int64 `yaml:"maxSize"` // bytes, 0 = unlimited
}

// OutputConfig defines output writing options.
type OutputConfig struct {
	CreateDirs bool   `yaml:"createDirs"` // create missing parent directories
	FileMode   string `yaml:"fileMode"`   // octal, e.g. "0644" (default: 0644)
}

// Mode returns the parsed file mode, falling back to the default permissions.
// Call Validate first; an unparsable value also yields the default.
func (o OutputConfig) Mode() fs.FileMode {
	if o.FileMode == "" {
		return fileutil.FilePermissions
	}
	mode, err := parseFileMode(o.FileMode)
	if err != nil {
		return fileutil.FilePermissions
	}
	return mode
}

// Validate checks value ranges.
// Called automatically by LoadConfig, but available for callers
// who construct Config manually.
func (c *Config) Validate() error {
	if c.Input.MaxSize < 0 || c.Input.MaxSize > MaxInputSizeLimit {
		return fmt.Errorf("%w: input.maxSize must be between 0 and %d, got %d",
			ErrInvalidConfig, MaxInputSizeLimit, c.Input.MaxSize)
	}
	if c.Output.FileMode != "" {
		if _, err := parseFileMode(c.Output.FileMode); err != nil {
			return fmt.Errorf("%w: output.fileMode: %v", ErrInvalidConfig, err)
		}
	}
	return nil
}

// parseFileMode parses an octal permission string such as "0644" or "600".
func parseFileMode(s string) (fs.FileMode, error) {
	v, err := strconv.ParseUint(s, 8, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid octal value %q", s)
	}
	if v > 0o777 {
		return 0, fmt.Errorf("value %q exceeds 0777", s)
	}
	if v&0o600 != 0o600 {
		return 0, fmt.Errorf("value %q must grant owner read and write", s)
	}
	return fs.FileMode(v), nil
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Input:  InputConfig{MaxSize: 0},
		Output: OutputConfig{CreateDirs: false, FileMode: ""},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths lists the candidate files for a config name, in lookup order:
// current directory, then <user config dir>/go-md2html/, each as .yaml then .yml.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, configDirName, name+ext))
		}
	}

	return paths
}

// resolveConfigPath returns the first existing candidate from SearchPaths.
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}
