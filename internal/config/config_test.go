package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets the config variables for the duration of the test.
// They have to be unset, not empty, for godotenv to fill them in.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"PORT", "DB_PATH", "STATIC_PATH", "SESSION_SECRET", "SESSION_TTL", "SESSION_SWEEP_INTERVAL", "LOG_LEVEL", "LOG_FORMAT"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "./data/brewandbake.db", cfg.DBPath)
	assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
	assert.Equal(t, time.Minute, cfg.SweepInterval)
	assert.True(t, cfg.SecretGenerated)
	assert.NotEmpty(t, cfg.SessionSecret)
}

func TestLoad_FromEnvFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOG_LEVEL", "warn")

	envFile := filepath.Join(t.TempDir(), ".env")
	content := "PORT=9090\nSESSION_SECRET=from-file\nSESSION_TTL=45m\nLOG_LEVEL=debug\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o600))

	cfg, err := Load(envFile)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "from-file", cfg.SessionSecret)
	assert.False(t, cfg.SecretGenerated)
	assert.Equal(t, 45*time.Minute, cfg.SessionTTL)
	// Variables already in the environment win over the file.
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoad_MissingEnvFileIsIgnored(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "nope.env"))
	assert.NoError(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "non-numeric port", key: "PORT", value: "http"},
		{name: "port out of range", key: "PORT", value: "70000"},
		{name: "bad ttl", key: "SESSION_TTL", value: "forever"},
		{name: "negative sweep", key: "SESSION_SWEEP_INTERVAL", value: "-1m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load("")
			assert.Error(t, err)
		})
	}
}
