package server

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the web server settings. Zero values fall back to the
// defaults below, so a partial YAML file is fine.
type Config struct {
	Addr      string `yaml:"addr"`
	OutputDir string `yaml:"output_dir"`
	Debug     bool   `yaml:"debug"`
}

// DefaultConfig returns the stock service settings.
func DefaultConfig() Config {
	return Config{
		Addr:      ":5000",
		OutputDir: "static/images",
	}
}

// LoadConfig reads a YAML config file and overlays it on the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("server: read config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("server: parse config: %w", err)
	}

	if cfg.Addr == "" {
		cfg.Addr = DefaultConfig().Addr
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = DefaultConfig().OutputDir
	}
	return cfg, nil
}
