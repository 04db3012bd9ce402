package config

import (
	"fmt"
	"os"
	"time"
)

// Store drivers accepted in StoreDriver.
const (
	DriverSQLite = "sqlite"
	DriverRedis  = "redis"
	DriverMemory = "memory"
)

// Config holds runtime settings for the account CLI.
//
// Fields:
//   - APIURL: GraphQL endpoint that serves the profile query and the auth mutations.
//   - StoreDriver: backend of the local session store (sqlite, redis or memory).
//   - StorePath: sqlite database file, used only by the sqlite driver.
//   - RedisAddr: host:port of the redis server, used only by the redis driver.
//   - RequestTimeout: per-request timeout; zero leaves it to the transport.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	APIURL         string
	StoreDriver    string
	StorePath      string
	RedisAddr      string
	RequestTimeout time.Duration
	LogLevel       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIURL = "http://localhost:4000"
	c.StoreDriver = DriverSQLite
	c.StorePath = "session.db"
	c.RedisAddr = "127.0.0.1:6379"
	c.RequestTimeout = 0
	c.LogLevel = "warn"
}

// Validate reports settings that cannot work together.
func (c *Config) Validate() error {
	if c.APIURL == "" {
		return fmt.Errorf("api url must not be empty")
	}
	switch c.StoreDriver {
	case DriverSQLite:
		if c.StorePath == "" {
			return fmt.Errorf("sqlite store requires a path")
		}
	case DriverRedis:
		if c.RedisAddr == "" {
			return fmt.Errorf("redis store requires an address")
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unknown store driver %q", c.StoreDriver)
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("request timeout must not be negative")
	}
	return nil
}

// Load builds a Config from args (without the program name): defaults first,
// then the JSON file named by -c/-config, then environment, then flags.
// Later sources take precedence over earlier ones.
func Load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	parseEnv(cfg, os.LookupEnv)
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
