// Package config loads the application configuration from an optional
// YAML file with environment-variable overrides.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the full application configuration.
type Config struct {
	// DataDir holds every persisted table (menu, receipt, sales,
	// popularity, loyalty, credentials).
	DataDir string `yaml:"dataDir"`
	Logging struct {
		Path  string `yaml:"path"`
		Level string `yaml:"level"` // trace, debug, info, warn, error, fatal, panic
	} `yaml:"logging"`
}

// Load reads the config file at path, falling back to defaults when the
// file is absent, then applies environment overrides.
func Load(path string) (*Config, error) {
	conf := &Config{DataDir: "."}
	conf.Logging.Path = "ninjafood.log"
	conf.Logging.Level = "info"

	raw, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(raw, conf); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	conf.DataDir = getEnv("NINJAFOOD_DATA_DIR", conf.DataDir)
	conf.Logging.Path = getEnv("NINJAFOOD_LOG_PATH", conf.Logging.Path)
	conf.Logging.Level = getEnv("NINJAFOOD_LOG_LEVEL", conf.Logging.Level)
	return conf, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
