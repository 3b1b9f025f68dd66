// Package config loads run configuration files.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the run configuration. Command line flags override it.
type Config struct {
	// Filter keeps only subjects whose "Case::method" matches.
	Filter    string         `yaml:"filter" json:"filter"`
	FailFast  bool           `yaml:"fail_fast" json:"fail_fast"`
	Progress  string         `yaml:"progress" json:"progress"`
	LogLevel  string         `yaml:"log_level" json:"log_level"`
	LogFormat string         `yaml:"log_format" json:"log_format"`
	LogFile   string         `yaml:"log_file" json:"log_file"`
	NoColor   bool           `yaml:"no_color" json:"no_color"`
	Reports   []ReportConfig `yaml:"reports" json:"reports"`
}

// ReportConfig selects a report generator and its options.
type ReportConfig struct {
	Name    string         `yaml:"name" json:"name"`
	Options map[string]any `yaml:"options" json:"options"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Progress:  "dots",
		LogLevel:  "warn",
		LogFormat: "text",
	}
}

// LoadConfig loads a run configuration from a file.
//
// The file format is determined by extension:
//   - .yaml, .yml -> YAML
//   - .json -> JSON
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return ParseConfig(data, path)
}

// ParseConfig parses configuration data on top of Default.
//
// The format is determined by the file extension in path, or defaults to
// YAML if the path is empty or has an unknown extension.
func ParseConfig(data []byte, path string) (*Config, error) {
	config := Default()

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json":
		if err := json.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse JSON config: %w", err)
		}
	case ".yaml", ".yml", "":
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config (unknown format %s): %w", ext, err)
		}
	}

	for i := range config.Reports {
		if config.Reports[i].Options == nil {
			config.Reports[i].Options = map[string]any{}
		}
	}

	return config, nil
}
