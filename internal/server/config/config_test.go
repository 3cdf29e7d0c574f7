package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// setArgs replaces os.Args for the duration of the test. Config loading
// reads the command line directly, so tests must pin it.
func setArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	os.Args = append([]string{"testbin"}, args...)
	t.Cleanup(func() { os.Args = orig })
}

func TestLoadConfig_RequiresSecret(t *testing.T) {
	setArgs(t)
	t.Setenv("SECRET_KEY", "")

	_, err := LoadConfig()
	require.Error(t, err)
	require.Contains(t, err.Error(), "secret")
}

func TestLoadConfig_Defaults(t *testing.T) {
	setArgs(t)
	t.Setenv("SECRET_KEY", "k")
	t.Setenv("ENDPOINT_ADDR", "")
	t.Setenv("DATABASE_FILE", "")
	t.Setenv("ACCESS_TOKEN_VALIDITY_DURATION", "")
	t.Setenv("PUBLIC_DIR", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	require.Equal(t, ":3000", cfg.EndpointAddr)
	require.Equal(t, "db.json", cfg.DatabaseFile)
	require.Equal(t, "k", cfg.SecretKey)
	require.Equal(t, 1*time.Hour, cfg.AccessTokenValidityDuration)
	require.Equal(t, "public", cfg.PublicDir)
}

func TestLoadConfig_EnvOverlay(t *testing.T) {
	setArgs(t)
	t.Setenv("SECRET_KEY", "k")
	t.Setenv("ENDPOINT_ADDR", ":8080")
	t.Setenv("DATABASE_FILE", "users.json")
	t.Setenv("ACCESS_TOKEN_VALIDITY_DURATION", "30m")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	require.Equal(t, ":8080", cfg.EndpointAddr)
	require.Equal(t, "users.json", cfg.DatabaseFile)
	require.Equal(t, 30*time.Minute, cfg.AccessTokenValidityDuration)
}

func TestLoadConfig_EnvInvalidDuration(t *testing.T) {
	setArgs(t)
	t.Setenv("SECRET_KEY", "k")
	t.Setenv("ACCESS_TOKEN_VALIDITY_DURATION", "soon")

	_, err := LoadConfig()
	require.Error(t, err)
}

func TestLoadConfig_FlagsOverrideEnv(t *testing.T) {
	setArgs(t, "-a", ":9999", "-s", "flagsecret", "-t", "15")
	t.Setenv("SECRET_KEY", "envsecret")
	t.Setenv("ENDPOINT_ADDR", ":8080")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	require.Equal(t, ":9999", cfg.EndpointAddr)
	require.Equal(t, "flagsecret", cfg.SecretKey)
	require.Equal(t, 15*time.Minute, cfg.AccessTokenValidityDuration)
}

func TestLoadConfig_JsonFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.json")

	raw, err := json.Marshal(map[string]any{
		"endpoint_addr":                  ":4000",
		"secret_key":                     "jsonsecret",
		"access_token_validity_duration": "2h",
	})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, raw, 0o660))

	setArgs(t, "-c", path)
	t.Setenv("SECRET_KEY", "")
	t.Setenv("ENDPOINT_ADDR", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	require.Equal(t, ":4000", cfg.EndpointAddr)
	require.Equal(t, "jsonsecret", cfg.SecretKey)
	require.Equal(t, 2*time.Hour, cfg.AccessTokenValidityDuration)
	// untouched fields keep their defaults
	require.Equal(t, "db.json", cfg.DatabaseFile)
}

func TestLoadConfig_JsonFileMissing(t *testing.T) {
	setArgs(t, "-c", filepath.Join(t.TempDir(), "nope.json"))
	t.Setenv("SECRET_KEY", "k")

	_, err := LoadConfig()
	require.Error(t, err)
}
