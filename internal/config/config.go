package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Log    LogConfig    `yaml:"log"`
	Ingest IngestConfig `yaml:"ingest"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type IngestConfig struct {
	// Strict stops processing on the first bad package instead of
	// skipping it.
	Strict bool `yaml:"strict"`
}

// Default returns the configuration used when no config file is given.
func Default() *Config {
	return &Config{
		Log: LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads config from a YAML file, then applies environment variable overrides.
// An empty path skips the file and starts from defaults.
// Env vars use the prefix FITTRACK_ and underscore-separated paths:
//
//	FITTRACK_LOG_LEVEL, FITTRACK_LOG_FORMAT,
//	FITTRACK_INGEST_STRICT
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("FITTRACK_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("FITTRACK_LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
	if v := os.Getenv("FITTRACK_INGEST_STRICT"); v != "" {
		if strict, err := strconv.ParseBool(v); err == nil {
			cfg.Ingest.Strict = strict
		}
	}
}

func (c *Config) validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level %q is not one of debug, info, warn, error", c.Log.Level)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log.format %q is not one of text, json", c.Log.Format)
	}
	return nil
}
