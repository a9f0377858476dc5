// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Optional backends:

  - DATABASE_URL empty: UI preferences live in memory.
  - REDIS_URL empty: sessions live in memory and country figures are not cached.
  - DATA_DIR empty: the data bundled in the binary is used.
*/
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// # Configuration Schema

// Config holds all runtime configuration for the Flagdex API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Relational Database (PostgreSQL), preferences only
	DatabaseURL string `env:"DATABASE_URL"`

	// MigrationPath is a directory of SQL migrations on disk. Empty uses the bundled ones.
	MigrationPath string `env:"MIGRATION_PATH"`

	// Key-Value Cache (Redis), sessions and country figures
	RedisURL string `env:"REDIS_URL"`

	// DataDir overrides the bundled flags.json, taxonomy.yaml and countries.json.
	DataDir string `env:"DATA_DIR"`

	// Country figures lookup
	CountryAPIURL     string        `env:"COUNTRY_API_URL"     envDefault:"https://restcountries.com/v3.1"`
	CountryAPITimeout time.Duration `env:"COUNTRY_API_TIMEOUT" envDefault:"10s"`
	StatsCacheTTL     time.Duration `env:"STATS_CACHE_TTL"     envDefault:"24h"`

	// SessionTTL is how long an idle exploration session is kept.
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"72h"`

	// Cross-Origin Resource Sharing
	ExtraOrigins string `env:"EXTRA_ORIGINS"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	// Map environment variables to struct fields; malformed durations fail here.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if cfg.SessionTTL <= 0 {
		return nil, fmt.Errorf("config: SESSION_TTL must be positive, got %s", cfg.SessionTTL)
	}

	return cfg, nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// HasDatabase reports whether a PostgreSQL backend is configured.
func (c *Config) HasDatabase() bool { return c.DatabaseURL != "" }

// HasRedis reports whether a Redis backend is configured.
func (c *Config) HasRedis() bool { return c.RedisURL != "" }

// Origins returns the extra CORS origins, split on commas.
func (c *Config) Origins() []string {
	var origins []string
	for _, origin := range strings.Split(c.ExtraOrigins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
