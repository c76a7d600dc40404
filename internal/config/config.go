package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	// APIKey is the YouTube Data API v3 key (required).
	// A missing key is a startup failure, not a per-call error.
	APIKey string `env:"YOUTUBE_API_KEY,required"`

	// Transport selects the MCP transport: "stdio" or "http" (default: stdio).
	Transport string `env:"TRANSPORT" envDefault:"stdio"`

	// Port is the listen port for the HTTP transport (default: 8080).
	Port int `env:"PORT" envDefault:"8080"`

	// TranscriptLang is the default caption language for transcript lookups.
	TranscriptLang string `env:"YOUTUBE_TRANSCRIPT_LANG" envDefault:"en"`
}

// Load loads the configuration from environment variables.
// It first attempts to load a .env file (if present), then parses environment variables.
// Returns an error if required environment variables are missing.
func Load() (*Config, error) {
	// Load .env file if present (ignore error - .env is optional)
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
