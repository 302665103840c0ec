package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration for prepkit.
type Config struct {
	DBPath    string // SQLite database file holding the analysis history
	ExportDir string // directory reports are exported into
}

// rawConfig is used for YAML unmarshaling.
type rawConfig struct {
	DBPath    string `yaml:"db_path"`
	ExportDir string `yaml:"export_dir"`
}

const (
	defaultDBPath    = "prepkit.db"
	defaultExportDir = "."
)

// Load reads and parses the YAML config file at path, applies defaults,
// and validates the result. A missing file is not an error: prepkit is a
// local tool and runs fine with defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{
		DBPath:    defaultDBPath,
		ExportDir: defaultExportDir,
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	// Expand environment variables
	expanded := os.ExpandEnv(string(data))

	var raw rawConfig
	if err := yaml.Unmarshal([]byte(expanded), &raw); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if raw.DBPath != "" {
		cfg.DBPath = raw.DBPath
	}
	if raw.ExportDir != "" {
		cfg.ExportDir = raw.ExportDir
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validate(cfg *Config) error {
	if filepath.Clean(cfg.DBPath) == "." {
		return fmt.Errorf("db_path must be a file path, got %q", cfg.DBPath)
	}
	return nil
}
