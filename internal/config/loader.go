// internal/config/loader.go
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the settings file both binaries look for when no
// --config flag is given. A missing file is not an error; defaults apply.
const DefaultPath = "samples.yaml"

// Load loads the tool settings from a YAML file. An empty path yields
// pure defaults.
func Load(path string) (*Settings, error) {
	var cfg Settings
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading settings file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing settings file: %w", err)
		}
	}
	applyDefaults(&cfg)
	return &cfg, nil
}

// LoadDefault loads DefaultPath if it exists, defaults otherwise.
func LoadDefault() (*Settings, error) {
	if _, err := os.Stat(DefaultPath); err == nil {
		return Load(DefaultPath)
	}
	return Load("")
}

func applyDefaults(cfg *Settings) {
	if cfg.Sanitizer.ConfigDir == "" {
		cfg.Sanitizer.ConfigDir = defaultConfigDir()
	}
	if cfg.Sanitizer.ProvidersDir == "" {
		cfg.Sanitizer.ProvidersDir = filepath.Join(cfg.Sanitizer.ConfigDir, "providers")
	}
	if cfg.Sanitizer.OutputDir == "" {
		cfg.Sanitizer.OutputDir = "config_samples"
	}
	if cfg.Sanitizer.SampleSuffix == "" {
		cfg.Sanitizer.SampleSuffix = "_sample"
	}
	if cfg.Fixtures.OutputDir == "" {
		cfg.Fixtures.OutputDir = filepath.Join("tests", "pdf_fixtures")
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
}

// defaultConfigDir is where the lc CLI keeps its live configuration.
func defaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join("Library", "Application Support", "lc")
	}
	return filepath.Join(home, "Library", "Application Support", "lc")
}
