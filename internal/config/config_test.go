package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets every variable Load reads, restoring them after the test
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		EnvConfigPath, EnvStorageType, EnvRedisURL, EnvTableTTL,
		EnvPort, EnvLogLevel, EnvShuffleSeed,
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(Options{})
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, StorageTypeMemory, cfg.Storage.Type)
	assert.Equal(t, 6*time.Hour, cfg.Storage.TableTTL.Duration)
	assert.Nil(t, cfg.Game.ShuffleSeed)

	level, err := cfg.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, level)
}

func TestLoadTOMLFile(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "moonlight.toml", `
[server]
port = 9090
read_timeout = "5s"

[storage]
type = "redis"
redis_url = "redis://cache:6379"
table_ttl = "30m"

[log]
level = "debug"

[game]
shuffle_seed = 42
`)

	cfg, err := Load(Options{ConfigPath: path})
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout.Duration)
	assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout.Duration)
	assert.Equal(t, StorageTypeRedis, cfg.Storage.Type)
	assert.Equal(t, "redis://cache:6379", cfg.Storage.RedisURL)
	assert.Equal(t, 30*time.Minute, cfg.Storage.TableTTL.Duration)
	require.NotNil(t, cfg.Game.ShuffleSeed)
	assert.Equal(t, uint64(42), *cfg.Game.ShuffleSeed)

	level, err := cfg.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestLoadConfigPathFromEnv(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "moonlight.toml", "[server]\nport = 7000\n")
	t.Setenv(EnvConfigPath, path)

	cfg, err := Load(Options{})
	require.NoError(t, err)
	assert.Equal(t, 7000, cfg.Server.Port)
}

func TestEnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "moonlight.toml", "[server]\nport = 9090\n[log]\nlevel = \"debug\"\n")
	t.Setenv(EnvPort, "9191")
	t.Setenv(EnvLogLevel, "warn")
	t.Setenv(EnvShuffleSeed, "7")

	cfg, err := Load(Options{ConfigPath: path})
	require.NoError(t, err)

	assert.Equal(t, 9191, cfg.Server.Port)
	assert.Equal(t, "warn", cfg.Log.Level)
	require.NotNil(t, cfg.Game.ShuffleSeed)
	assert.Equal(t, uint64(7), *cfg.Game.ShuffleSeed)
}

func TestEnvFileFillsUnsetVariables(t *testing.T) {
	clearEnv(t)
	envFile := writeFile(t, ".env", "STORAGE_TYPE=redis\nREDIS_URL=redis://from-dotenv:6379\nPORT=8181\n")
	t.Setenv(EnvPort, "8282")

	cfg, err := Load(Options{EnvFiles: []string{envFile, filepath.Join(t.TempDir(), "missing.env")}})
	require.NoError(t, err)

	assert.Equal(t, StorageTypeRedis, cfg.Storage.Type)
	assert.Equal(t, "redis://from-dotenv:6379", cfg.Storage.RedisURL)
	// Already set in the environment, so the .env value is ignored
	assert.Equal(t, 8282, cfg.Server.Port)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"unknown storage", map[string]string{EnvStorageType: "postgres"}},
		{"redis without url", map[string]string{EnvStorageType: "redis"}},
		{"bad port", map[string]string{EnvPort: "eighty"}},
		{"port out of range", map[string]string{EnvPort: "70000"}},
		{"bad log level", map[string]string{EnvLogLevel: "chatty"}},
		{"bad seed", map[string]string{EnvShuffleSeed: "-1"}},
		{"bad ttl", map[string]string{EnvTableTTL: "forever"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load(Options{})
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingConfigFile(t *testing.T) {
	clearEnv(t)

	_, err := Load(Options{ConfigPath: filepath.Join(t.TempDir(), "nope.toml")})
	assert.Error(t, err)
}
