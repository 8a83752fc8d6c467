// Package config assembles runtime settings for the daybook CLI from
// defaults, the environment (.env supported), an optional JSON file, and
// command-line flags. Later sources take precedence over earlier ones.
package config

import "time"

// Config holds runtime settings for the daybook CLI.
//
// Fields:
//   - ServerBaseURL: base URL of the backend REST endpoint.
//   - DatabasePath: path of the local sqlite file (session + snapshots).
//   - RequestTimeout: per-request HTTP timeout; 0 disables it, which is the
//     default behavior of the client.
type Config struct {
	ServerBaseURL  string
	DatabasePath   string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:8080"
	c.DatabasePath = "daybook.db"
	c.RequestTimeout = 0
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment, a JSON file (if present), and command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
