package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/borbinha27/prova-3bim/internal/flagx"
	"github.com/borbinha27/prova-3bim/internal/timex"
)

// JsonConfig mirrors Config for JSON unmarshalling. Interval fields use
// timex.Duration, which accepts both string values such as "1h" and
// integer nanoseconds. Absent fields keep whatever the defaults set.
type JsonConfig struct {
	EndpointAddr                string          `json:"endpoint_addr"`
	DatabaseFile                string          `json:"database_file"`
	SecretKey                   string          `json:"secret_key"`
	AccessTokenValidityDuration *timex.Duration `json:"access_token_validity_duration"`
	PublicDir                   string          `json:"public_dir"`
}

// parseJson overlays configuration values from a JSON file onto config.
// The file path comes from the -c or -config command-line flags; when
// neither is set, no file is loaded.
func parseJson(config *Config) error {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return nil
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		return fmt.Errorf("config file: %w", err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		return fmt.Errorf("config file %s: %w", jsonConfigFile, err)
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
	if c.AccessTokenValidityDuration != nil {
		config.AccessTokenValidityDuration = c.AccessTokenValidityDuration.Duration
	}
	if c.PublicDir != "" {
		config.PublicDir = c.PublicDir
	}

	return nil
}
