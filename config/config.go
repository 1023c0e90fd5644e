package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Transport names accepted in server.transport
const (
	TransportStdio = "stdio"
	TransportSSE   = "sse"
)

// Config aggregates all application configuration
type Config struct {
	Amadeus AmadeusConfig `yaml:"amadeus"`
	Server  ServerConfig  `yaml:"server"`
}

type AmadeusConfig struct {
	ClientID       string `yaml:"client_id" env:"AMADEUS_CLIENT_ID"`
	ClientSecret   string `yaml:"client_secret" env:"AMADEUS_CLIENT_SECRET"`
	Production     bool   `yaml:"production" env:"AMADEUS_PRODUCTION" env-default:"false"`
	TimeoutSeconds int    `yaml:"timeout_seconds" env:"AMADEUS_TIMEOUT" env-default:"30"`
}

type ServerConfig struct {
	Transport string `yaml:"transport" env:"SERVER_TRANSPORT" env-default:"stdio"`
	Port      int    `yaml:"port" env:"SERVER_PORT" env-default:"8500"`
}

// Load reads configuration from config.yaml and environment variables
// Priority: Env Vars > Config File > Defaults
func Load() (*Config, error) {
	var cfg Config

	// Read config.yaml if present, then override with envs.
	err := cleanenv.ReadConfig("config.yaml", &cfg)
	if err != nil {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("failed to read env config: %w", err)
		}
	}

	return &cfg, nil
}

// Validate checks that required fields are set and enum fields are sane
func (c *Config) Validate() error {
	if c.Amadeus.ClientID == "" {
		return fmt.Errorf("AMADEUS_CLIENT_ID is required")
	}
	if c.Amadeus.ClientSecret == "" {
		return fmt.Errorf("AMADEUS_CLIENT_SECRET is required")
	}
	if c.Server.Transport != TransportStdio && c.Server.Transport != TransportSSE {
		return fmt.Errorf("unknown server transport %q (want %q or %q)", c.Server.Transport, TransportStdio, TransportSSE)
	}
	return nil
}
