// Package config handles configuration for the server component,
// including defaults, JSON overlay, environment variables, and
// command-line flags.
package config

import (
	"errors"
	"time"
)

// Config holds runtime settings for the account service.
//
// Fields:
//   - EndpointAddr: bind address for the HTTP endpoint.
//   - DatabaseFile: path of the JSON file holding the user collection.
//   - SecretKey: HMAC secret for signing JWTs (HS256). Required, no default.
//   - AccessTokenValidityDuration: access token lifetime.
//   - PublicDir: directory of static assets, served when it exists.
type Config struct {
	EndpointAddr                string
	DatabaseFile                string
	SecretKey                   string
	AccessTokenValidityDuration time.Duration
	PublicDir                   string
}

// LoadDefaults populates Config with development defaults. The signing
// secret deliberately has none and must be supplied externally.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":3000"
	c.DatabaseFile = "db.json"
	c.AccessTokenValidityDuration = 1 * time.Hour
	c.PublicDir = "public"
}

// Validate checks that required settings were supplied.
func (c *Config) Validate() error {
	if c.SecretKey == "" {
		return errors.New("config: signing secret is required (SECRET_KEY env, -s flag, or secret_key in the config file)")
	}
	if c.AccessTokenValidityDuration <= 0 {
		return errors.New("config: access token validity must be positive")
	}
	return nil
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, the environment, and finally command-line
// flags.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
