package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables consulted when no config file is given. The VITE_
// names are the ones the project's web frontend uses; they are accepted here
// so one .env serves both.
const (
	EnvURL       = "SUPABASE_URL"
	EnvKey       = "SUPABASE_KEY"
	EnvURLLegacy = "VITE_SUPABASE_URL"
	EnvKeyLegacy = "VITE_SUPABASE_PUBLISHABLE_KEY"
)

// Load reads a YAML config file and expands environment variables.
// A local .env file, if present, is loaded into the environment first.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// Expand ${VAR} environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config yaml: %w", err)
	}

	return &cfg, nil
}

// FromEnv builds a config from the process environment alone. A local .env
// file, if present, is loaded first; real environment variables win over .env
// entries.
func FromEnv() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	cfg.Supabase.URL = firstEnv(EnvURL, EnvURLLegacy)
	cfg.Supabase.Key = firstEnv(EnvKey, EnvKeyLegacy)
	return cfg
}

// LoadOrEnv loads the config file at path, or falls back to the environment
// when path is empty. Defaults are applied and the result validated either way.
func LoadOrEnv(path string) (*Config, error) {
	var (
		cfg *Config
		err error
	)
	if path == "" {
		cfg = FromEnv()
	} else {
		cfg, err = Load(path)
		if err != nil {
			return nil, err
		}
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

func firstEnv(names ...string) string {
	for _, name := range names {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}
