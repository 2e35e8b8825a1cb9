package config

import (
	"fmt"

	"github.com/zjkmxy/ownd/std/log"
	"github.com/zjkmxy/ownd/std/types/lru"
	"github.com/zjkmxy/ownd/std/utils/toolutils"
)

type Config struct {
	// Logging level: TRACE, DEBUG, INFO, WARN, ERROR or FATAL.
	LogLevel string `json:"log_level"`
	// Cache built by the lru tool.
	Cache CacheConfig `json:"cache"`

	// Parsed log level
	logLevel log.Level
}

type CacheConfig struct {
	// Entries per shard.
	Capacity int `json:"capacity"`
	// Number of shards.
	Shards int `json:"shards"`
}

func DefaultConfig() *Config {
	return &Config{
		LogLevel: "INFO",
		Cache: CacheConfig{
			Capacity: 128,
			Shards:   4,
		},
	}
}

// Load reads a YAML file on top of the defaults and validates it.
func Load(file string) (*Config, error) {
	c := DefaultConfig()
	if err := toolutils.ReadYaml(c, file); err != nil {
		return nil, err
	}
	if err := c.Parse(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) Parse() (err error) {
	c.logLevel, err = log.ParseLevel(c.LogLevel)
	if err != nil {
		return fmt.Errorf("%w: %q", err, c.LogLevel)
	}

	if c.Cache.Capacity <= 0 {
		return fmt.Errorf("cache capacity must be positive")
	}

	if c.Cache.Shards <= 0 {
		return fmt.Errorf("cache shards must be at least 1")
	}

	return nil
}

func (c *Config) Level() log.Level {
	return c.logLevel
}

// NewCache builds the sharded cache described by the configuration.
func (c *Config) NewCache() (*lru.Sharded, error) {
	return lru.NewSharded(c.Cache.Shards, c.Cache.Capacity)
}
