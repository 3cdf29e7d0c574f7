package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// envConfig mirrors Config for environment parsing. Values absent from the
// environment keep whatever the previous layers set.
type envConfig struct {
	EndpointAddr                string `env:"ENDPOINT_ADDR"`
	DatabaseFile                string `env:"DATABASE_FILE"`
	SecretKey                   string `env:"SECRET_KEY"`
	AccessTokenValidityDuration string `env:"ACCESS_TOKEN_VALIDITY_DURATION"`
	PublicDir                   string `env:"PUBLIC_DIR"`
}

// parseEnv overlays Config fields from environment variables. A .env file
// in the working directory is loaded first when present.
func parseEnv(config *Config) error {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return fmt.Errorf("loading .env: %w", err)
		}
	}

	c := envConfig{}
	if err := env.Parse(&c); err != nil {
		return fmt.Errorf("parsing environment: %w", err)
	}

	if c.EndpointAddr != "" {
		config.EndpointAddr = c.EndpointAddr
	}
	if c.DatabaseFile != "" {
		config.DatabaseFile = c.DatabaseFile
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.AccessTokenValidityDuration != "" {
		d, err := time.ParseDuration(c.AccessTokenValidityDuration)
		if err != nil {
			return fmt.Errorf("ACCESS_TOKEN_VALIDITY_DURATION: %w", err)
		}
		config.AccessTokenValidityDuration = d
	}
	if c.PublicDir != "" {
		config.PublicDir = c.PublicDir
	}

	return nil
}
