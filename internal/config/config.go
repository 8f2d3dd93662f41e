// Package config handles repository configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents repository configuration stored in .ristab/config.yaml.
type Config struct {
	// Dedupe is the row deduplication policy applied when importing:
	// "exact" (full-row equality) or "title-email".
	Dedupe string `yaml:"dedupe"`
}

const (
	RistabDir  = ".ristab"
	ConfigFile = "config.yaml"
	RowsFile   = "rows.jsonl"
	CacheDir   = "cache"
	DBFile     = "rows.db"
)

// Default returns the configuration written by init.
func Default() *Config {
	return &Config{Dedupe: "exact"}
}

// RistabPath returns the path to the .ristab directory from a root path.
func RistabPath(root string) string {
	return filepath.Join(root, RistabDir)
}

// ConfigPath returns the path to config.yaml from a root path.
func ConfigPath(root string) string {
	return filepath.Join(root, RistabDir, ConfigFile)
}

// RowsPath returns the path to rows.jsonl from a root path.
func RowsPath(root string) string {
	return filepath.Join(root, RistabDir, RowsFile)
}

// CachePath returns the path to the cache directory from a root path.
func CachePath(root string) string {
	return filepath.Join(root, RistabDir, CacheDir)
}

// DBPath returns the path to rows.db from a root path.
func DBPath(root string) string {
	return filepath.Join(root, RistabDir, CacheDir, DBFile)
}

// IsRepository checks if the given path contains a ristab repository.
func IsRepository(root string) bool {
	info, err := os.Stat(RistabPath(root))
	return err == nil && info.IsDir()
}

// FindRepository walks up from the given path to find a ristab repository.
// Returns the repository root path or an error if not found.
func FindRepository(start string) (string, error) {
	abs, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	for {
		if IsRepository(abs) {
			return abs, nil
		}

		parent := filepath.Dir(abs)
		if parent == abs {
			return "", fmt.Errorf("not in a ristab repository (no .ristab directory found)")
		}
		abs = parent
	}
}

// Load reads configuration from the repository at the given root.
func Load(root string) (*Config, error) {
	data, err := os.ReadFile(ConfigPath(root))
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return &cfg, nil
}

// Save writes configuration to the repository at the given root.
func (c *Config) Save(root string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(ConfigPath(root), data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}
