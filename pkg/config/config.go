package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds the runtime settings, populated from the environment.
type Config struct {
	// DictPath is the annotated dictionary snapshot produced by dictgen.
	DictPath string `env:"KOTOBA_DICT" env-default:"dictionary.jsonl" env-description:"path to the dictionary snapshot"`
	// StatsPath is the SQLite database for round history. Empty disables
	// recording.
	StatsPath string `env:"KOTOBA_STATS" env-default:"" env-description:"path to the stats database"`
	// RoundTimeout is how long a round waits for an answer.
	RoundTimeout time.Duration `env:"KOTOBA_ROUND_TIMEOUT" env-default:"120s" env-description:"inactivity timeout per round"`
	// HarvestWorkers is the tokenization parallelism for harvested pools.
	HarvestWorkers int `env:"KOTOBA_HARVEST_WORKERS" env-default:"4" env-description:"worker count for text harvesting"`
}

// Load reads configuration from the environment and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings no run could make sense of.
func (c Config) Validate() error {
	if c.DictPath == "" {
		return fmt.Errorf("dictionary path must be set")
	}
	if c.RoundTimeout <= 0 {
		return fmt.Errorf("round timeout must be positive, got %s", c.RoundTimeout)
	}
	if c.HarvestWorkers <= 0 {
		return fmt.Errorf("harvest workers must be positive, got %d", c.HarvestWorkers)
	}
	return nil
}
