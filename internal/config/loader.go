package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if FPLLEAGUE_CONFIG is set
//  3. env (prefix FPLLEAGUE_)
func Load() (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("FPLLEAGUE_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
		}
	}

	// Environment variables: FPLLEAGUE_ADDR, FPLLEAGUE_FETCH_WORKERS, ...
	// Underscores are preserved to match the koanf tags on the struct.
	envProvider := env.Provider("FPLLEAGUE_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "fplleague_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Addr == "" {
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	}
	if c.BaseURL == "" {
		return fmt.Errorf("%w: base_url must not be empty", ErrInvalidConfig)
	}
	if c.FetchWorkers < 1 {
		return fmt.Errorf("%w: fetch_workers must be >= 1", ErrInvalidConfig)
	}
	if c.DefaultTopN < 1 {
		return fmt.Errorf("%w: default_top_n must be >= 1", ErrInvalidConfig)
	}
	if c.SleepMS < 0 {
		return fmt.Errorf("%w: sleep_ms must not be negative", ErrInvalidConfig)
	}
	return nil
}
