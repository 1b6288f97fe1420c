package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the optional per-directory configuration file.
const FileName = "tally.yaml"

// Config represents the top-level tally.yaml configuration. Everything in
// it is a default; command-line flags always win.
type Config struct {
	Ledger  string        `yaml:"ledger,omitempty"`
	Import  ImportConfig  `yaml:"import,omitempty"`
	Reports ReportsConfig `yaml:"reports,omitempty"`
}

// ImportConfig holds CSV import defaults.
type ImportConfig struct {
	DateFormat string `yaml:"date_format,omitempty"` // Go reference layout
}

// ReportsConfig holds balance report defaults.
type ReportsConfig struct {
	Currency string `yaml:"currency,omitempty"` // target currency for re-pricing
	Group    string `yaml:"group,omitempty"`    // period grouping unit
}

// Load reads a tally.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// LoadIfPresent reads tally.yaml from the working directory, returning an
// empty Config when the file does not exist.
func LoadIfPresent() (*Config, error) {
	cfg, err := Load(FileName)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
