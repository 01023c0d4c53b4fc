package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	for _, k := range []string{"SERVER_PORT", "DATA_SOURCE", "DATA_DIR", "SOURCE_TIMEOUT_SECONDS", "SCORING_POLICY", "PROBE_INTERVAL_SECONDS", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "LOG_LEVEL"} {
		t.Setenv(k, "")
	}

	assert.Equal(t, 8080, ServerPort())
	assert.Equal(t, ":8080", ServerAddr())
	assert.Equal(t, "file", DataSource())
	assert.Equal(t, "data", DataDir())
	assert.Equal(t, 10*time.Second, SourceTimeout())
	assert.Equal(t, "coarse", ScoringPolicy())
	assert.Equal(t, 60*time.Second, ProbeInterval())
	assert.Equal(t, 100.0, RateLimitRPS())
	assert.Equal(t, 20, RateLimitBurst())
	assert.Equal(t, "info", LogLevel())
}

func TestOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DATA_SOURCE", "http")
	t.Setenv("SOURCE_TIMEOUT_SECONDS", "3")
	t.Setenv("SCORING_POLICY", "proportional")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("RATE_LIMIT_BURST", "-1")

	assert.Equal(t, ":9090", ServerAddr())
	assert.Equal(t, "http", DataSource())
	assert.Equal(t, 3*time.Second, SourceTimeout())
	assert.Equal(t, "proportional", ScoringPolicy())
	assert.Equal(t, 2.5, RateLimitRPS())
	assert.Equal(t, 20, RateLimitBurst(), "invalid values fall back to the default")
}

func TestLoad_ReadsEnvFileAndSecret(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte("DATA_DIR=/srv/data\n"), 0o600))
	require.NoError(t, os.WriteFile(envFile+".secret", []byte("DATABASE_URL=postgres://u:p@db/dash\n"), 0o600))

	t.Setenv("INVESTORDASH_ENV", envFile)
	// godotenv never overrides variables that are already set, so start from
	// unset values that t.Setenv will restore afterwards.
	t.Setenv("DATA_DIR", "")
	t.Setenv("DATABASE_URL", "")
	require.NoError(t, os.Unsetenv("DATA_DIR"))
	require.NoError(t, os.Unsetenv("DATABASE_URL"))

	require.NoError(t, Load())
	assert.Equal(t, "/srv/data", DataDir())
	assert.Equal(t, "postgres://u:p@db/dash", DatabaseURL())
}
