package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the environment. A .env file in
// the working directory is loaded first when present; already-set variables
// win over the file, per godotenv semantics.
//
// Recognized variables:
//   - DAYBOOK_SERVER_URL
//   - DAYBOOK_DB_PATH
//   - DAYBOOK_REQUEST_TIMEOUT (Go duration string, e.g. "5s")
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("DAYBOOK_SERVER_URL"); v != "" {
		cfg.ServerBaseURL = v
	}
	if v := os.Getenv("DAYBOOK_DB_PATH"); v != "" {
		cfg.DatabasePath = v
	}
	if v := os.Getenv("DAYBOOK_REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
}
